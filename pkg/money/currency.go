package money

// Currency is an ISO-style code with a static display symbol and decimal
// precision attached. The set below is closed; codes outside it still format
// and quantize, falling back to the raw code and two decimals.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	BTC Currency = "BTC"
	ETH Currency = "ETH"
)

type currencyInfo struct {
	symbol   string
	decimals int
}

var currencies = map[Currency]currencyInfo{
	USD: {"$", 2},
	EUR: {"€", 2},
	GBP: {"£", 2},
	JPY: {"¥", 0},
	AUD: {"A$", 2},
	CAD: {"C$", 2},
	CHF: {"Fr", 2},
	CNY: {"¥", 0},
	BTC: {"₿", 8},
	ETH: {"Ξ", 8},
}

// Symbols printed directly in front of the amount. Everything else is
// appended after a space.
var prefixSymbols = map[string]bool{
	"$": true,
	"€": true,
	"£": true,
	"¥": true,
}

// Symbol returns the display glyph, or the code itself when unknown.
func (c Currency) Symbol() string {
	if info, ok := currencies[c]; ok {
		return info.symbol
	}
	return string(c)
}

// Decimals returns the quantization precision for the currency's smallest
// unit: 0 for JPY/CNY, 8 for BTC/ETH, 2 for everything else.
func (c Currency) Decimals() int {
	if info, ok := currencies[c]; ok {
		return info.decimals
	}
	return 2
}

func (c Currency) Known() bool {
	_, ok := currencies[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}
