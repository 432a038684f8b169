// Package catalog feeds externally maintained symbol specifications into the
// instrument constructor. The file format is the YAML mirror of the symbol
// wire form; every entry is validated before the catalog becomes visible.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/halcyonfx/fxcore/pkg/instrument"
	"github.com/halcyonfx/fxcore/pkg/utility/fixed"
)

var (
	ErrSymbolNotFound  = errors.New("symbol is not found")
	ErrDuplicateSymbol = errors.New("duplicate symbol name")
)

type symbolEntry struct {
	Name        string `mapstructure:"name"`
	Category    string `mapstructure:"category"`
	Description string `mapstructure:"description"`

	BaseCurrency  string `mapstructure:"base_currency"`
	QuoteCurrency string `mapstructure:"quote_currency"`

	Point     float64 `mapstructure:"point"`
	TickSize  float64 `mapstructure:"tick_size"`
	TickValue float64 `mapstructure:"tick_value"`

	LotSize float64 `mapstructure:"lot_size"`
	MinLot  float64 `mapstructure:"min_lot"`
	MaxLot  float64 `mapstructure:"max_lot"`
	LotStep float64 `mapstructure:"lot_step"`

	MarginInitial     float64 `mapstructure:"margin_initial"`
	MarginMaintenance float64 `mapstructure:"margin_maintenance"`

	SwapLong  float64 `mapstructure:"swap_long"`
	SwapShort float64 `mapstructure:"swap_short"`

	SpreadFloat bool `mapstructure:"spread_float"`
	Digits      int  `mapstructure:"digits"`
}

type fileConfig struct {
	Symbols []symbolEntry `mapstructure:"symbols"`
}

// Catalog is an immutable, name-keyed set of validated symbols.
type Catalog struct {
	symbols map[string]instrument.Symbol
}

func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	symbols := make(map[string]instrument.Symbol, len(cfg.Symbols))
	for _, entry := range cfg.Symbols {
		symbol, err := entry.toSymbol()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
		}
		if _, exists := symbols[symbol.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, symbol.Name)
		}
		symbols[symbol.Name] = symbol
	}

	return &Catalog{symbols: symbols}, nil
}

func (e symbolEntry) toSymbol() (instrument.Symbol, error) {
	category, err := instrument.ParseCategory(e.Category)
	if err != nil {
		return instrument.Symbol{}, err
	}

	s := instrument.Symbol{
		Name:              e.Name,
		Category:          category,
		Description:       e.Description,
		BaseCurrency:      e.BaseCurrency,
		QuoteCurrency:     e.QuoteCurrency,
		Point:             fixed.FromFloat64(e.Point),
		TickSize:          fixed.FromFloat64(e.TickSize),
		TickValue:         fixed.FromFloat64(e.TickValue),
		LotSize:           fixed.FromFloat64(e.LotSize),
		MinLot:            fixed.FromFloat64(e.MinLot),
		MaxLot:            fixed.FromFloat64(e.MaxLot),
		LotStep:           fixed.FromFloat64(e.LotStep),
		MarginInitial:     fixed.FromFloat64(e.MarginInitial),
		MarginMaintenance: fixed.FromFloat64(e.MarginMaintenance),
		SwapLong:          fixed.FromFloat64(e.SwapLong),
		SwapShort:         fixed.FromFloat64(e.SwapShort),
		SpreadFloat:       e.SpreadFloat,
		Digits:            e.Digits,
	}
	if err := s.Validate(); err != nil {
		return instrument.Symbol{}, err
	}
	return s, nil
}

func (c *Catalog) Get(name string) (instrument.Symbol, error) {
	symbol, ok := c.symbols[name]
	if !ok {
		return instrument.Symbol{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return symbol, nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.symbols))
	for name := range c.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	return len(c.symbols)
}
