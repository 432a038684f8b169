package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/halcyonfx/fxcore/pkg/catalog"
	"github.com/halcyonfx/fxcore/pkg/money"
	"github.com/halcyonfx/fxcore/pkg/utility"
	"github.com/halcyonfx/fxcore/pkg/utility/fixed"
)

func main() {
	catalogPath := flag.String("catalog", DefaultCatalogPath, "path to the symbol catalog file")
	symbolName := flag.String("symbol", "", "symbol to calculate for")
	volumeArg := flag.String("volume", DefaultVolume, "trade volume in lots")
	priceArg := flag.String("price", "", "current instrument price")
	leverage := flag.Int("leverage", DefaultLeverage, "account leverage")
	account := flag.String("account", DefaultAccountCurrency, "account currency code")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)
	logger = logger.With(utility.ExecutionField())

	if *symbolName == "" || *priceArg == "" {
		logger.Error("symbol and price are required")
		flag.Usage()
		os.Exit(2)
	}

	price, err := fixed.Parse(*priceArg)
	if err != nil {
		logger.Fatal("invalid price", zap.String("price", *priceArg), zap.Error(err))
	}
	volume, err := fixed.Parse(*volumeArg)
	if err != nil {
		logger.Fatal("invalid volume", zap.String("volume", *volumeArg), zap.Error(err))
	}
	if *leverage <= 0 {
		logger.Fatal("leverage must be positive", zap.Int("leverage", *leverage))
	}

	c, err := catalog.Load(*catalogPath)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.String("path", *catalogPath), zap.Int("symbols", c.Len()))

	symbol, err := c.Get(*symbolName)
	if err != nil {
		logger.Fatal("unknown symbol", zap.String("symbol", *symbolName), zap.Error(err))
	}
	logger.Info("symbol resolved", symbol.Fields()...)

	if !symbol.ValidateVolume(volume) {
		stepped := symbol.VolumeStep(volume)
		logger.Warn("volume is off the lot grid",
			zap.String("requested", volume.String()),
			zap.String("stepped", stepped.String()))
		volume = stepped
	}

	accountCurrency := money.Currency(*account)
	normalized := symbol.NormalizePrice(price)
	margin := money.New(symbol.RequiredMargin(volume, normalized, *leverage), accountCurrency)
	pipValue := money.New(symbol.PipValue(*account), accountCurrency)

	logger.Info("calculation complete",
		zap.String("symbol", symbol.Name),
		zap.String("volume", volume.String()),
		zap.String("normalized_price", normalized.String()),
		zap.Int("leverage", *leverage),
		zap.String("required_margin", margin.String()),
		zap.String("pip_value", pipValue.String()))
}
