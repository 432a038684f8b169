package instrument

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/halcyonfx/fxcore/pkg/utility/fixed"
)

var ErrInvalidSymbol = errors.New("invalid symbol specification")

// Flat per-lot pip value. Proper valuation needs a cross rate between the
// quote and account currencies, which this core has no rate source for.
var pipValuePerLot = fixed.MustNew(10, 0)

// Symbol is the static trading specification of an instrument. It is built
// once from catalog data, checked with Validate, and treated as read-only
// afterwards; every derived quantity is computed on demand.
type Symbol struct {
	Name        string
	Category    Category
	Description string

	BaseCurrency  string
	QuoteCurrency string

	Point     fixed.Point
	TickSize  fixed.Point
	TickValue fixed.Point

	LotSize fixed.Point
	MinLot  fixed.Point
	MaxLot  fixed.Point
	LotStep fixed.Point

	MarginInitial     fixed.Point
	MarginMaintenance fixed.Point

	SwapLong  fixed.Point
	SwapShort fixed.Point

	SpreadFloat bool
	Digits      int
}

func (s Symbol) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSymbol)
	}
	if !s.Point.IsPos() {
		return fmt.Errorf("%w: %s: point must be positive", ErrInvalidSymbol, s.Name)
	}
	if !s.TickSize.IsPos() {
		return fmt.Errorf("%w: %s: tick size must be positive", ErrInvalidSymbol, s.Name)
	}
	if !s.LotSize.IsPos() {
		return fmt.Errorf("%w: %s: lot size must be positive", ErrInvalidSymbol, s.Name)
	}
	if !s.MinLot.IsPos() {
		return fmt.Errorf("%w: %s: min lot must be positive", ErrInvalidSymbol, s.Name)
	}
	if !s.LotStep.IsPos() {
		return fmt.Errorf("%w: %s: lot step must be positive", ErrInvalidSymbol, s.Name)
	}
	if s.MaxLot.Lt(s.MinLot) {
		return fmt.Errorf("%w: %s: max lot %s below min lot %s", ErrInvalidSymbol, s.Name, s.MaxLot.String(), s.MinLot.String())
	}
	return nil
}

// PipSize is ten points by market convention.
func (s Symbol) PipSize() fixed.Point {
	return s.Point.MulInt(10)
}

func (s Symbol) IsForex() bool  { return s.Category == CategoryForex }
func (s Symbol) IsCrypto() bool { return s.Category == CategoryCrypto }

// CurrencyPair renders "BASE/QUOTE" when both legs are known, otherwise the
// raw instrument name.
func (s Symbol) CurrencyPair() string {
	if s.BaseCurrency != "" && s.QuoteCurrency != "" {
		return s.BaseCurrency + "/" + s.QuoteCurrency
	}
	return s.Name
}

// PipValue returns the flat per-lot pip value regardless of the account
// currency.
func (s Symbol) PipValue(accountCurrency string) fixed.Point {
	_ = accountCurrency
	return pipValuePerLot
}

// RequiredMargin is (volume x lot size x price) / leverage, quantized to two
// decimals. Leverage zero is a caller error and panics in the fixed wrapper.
func (s Symbol) RequiredMargin(volume, price fixed.Point, leverage int) fixed.Point {
	notional := volume.Mul(s.LotSize).Mul(price)
	return notional.DivInt(leverage).RescaleHalfUp(2)
}

// NormalizePrice quantizes to the instrument's digits, then snaps down to the
// nearest tick-size multiple.
func (s Symbol) NormalizePrice(price fixed.Point) fixed.Point {
	quantized := price.RescaleHalfUp(s.Digits)
	ticks, _ := quantized.QuoRem(s.TickSize)
	return ticks.Mul(s.TickSize).RescaleHalfUp(s.Digits)
}

// ValidateVolume reports whether volume lies in [MinLot, MaxLot] and sits on
// the lot-step grid anchored at MinLot.
func (s Symbol) ValidateVolume(volume fixed.Point) bool {
	if volume.Lt(s.MinLot) || volume.Gt(s.MaxLot) {
		return false
	}
	_, rem := volume.Sub(s.MinLot).QuoRem(s.LotStep)
	return rem.IsZero()
}

// VolumeStep clamps volume into [MinLot, MaxLot] and snaps it down onto the
// lot-step grid, quantized to two decimals.
func (s Symbol) VolumeStep(volume fixed.Point) fixed.Point {
	v := clamp(volume, s.MinLot, s.MaxLot)
	steps, _ := v.Sub(s.MinLot).QuoRem(s.LotStep)
	return s.MinLot.Add(steps.Mul(s.LotStep)).RescaleHalfUp(2)
}

func clamp(p, min, max fixed.Point) fixed.Point {
	if p.Gt(max) {
		return max
	} else if p.Lt(min) {
		return min
	} else {
		return p
	}
}

func (s Symbol) Fields() []zap.Field {
	return []zap.Field{
		zap.String("name", s.Name),
		zap.String("category", string(s.Category)),
		zap.String("pair", s.CurrencyPair()),
		zap.String("point", s.Point.String()),
		zap.String("tick_size", s.TickSize.String()),
		zap.String("lot_size", s.LotSize.String()),
		zap.Int("digits", s.Digits),
	}
}

// symbolWire is the external dict form: numeric fields travel as plain
// numbers. Precision loss is acceptable only at this boundary.
type symbolWire struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`

	BaseCurrency  string `json:"base_currency,omitempty"`
	QuoteCurrency string `json:"quote_currency,omitempty"`

	Point     float64 `json:"point"`
	TickSize  float64 `json:"tick_size"`
	TickValue float64 `json:"tick_value"`

	LotSize float64 `json:"lot_size"`
	MinLot  float64 `json:"min_lot"`
	MaxLot  float64 `json:"max_lot"`
	LotStep float64 `json:"lot_step"`

	MarginInitial     float64 `json:"margin_initial"`
	MarginMaintenance float64 `json:"margin_maintenance"`

	SwapLong  float64 `json:"swap_long"`
	SwapShort float64 `json:"swap_short"`

	SpreadFloat bool `json:"spread_float"`
	Digits      int  `json:"digits"`
}

func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(symbolWire{
		Name:              s.Name,
		Category:          string(s.Category),
		Description:       s.Description,
		BaseCurrency:      s.BaseCurrency,
		QuoteCurrency:     s.QuoteCurrency,
		Point:             wireFloat(s.Point),
		TickSize:          wireFloat(s.TickSize),
		TickValue:         wireFloat(s.TickValue),
		LotSize:           wireFloat(s.LotSize),
		MinLot:            wireFloat(s.MinLot),
		MaxLot:            wireFloat(s.MaxLot),
		LotStep:           wireFloat(s.LotStep),
		MarginInitial:     wireFloat(s.MarginInitial),
		MarginMaintenance: wireFloat(s.MarginMaintenance),
		SwapLong:          wireFloat(s.SwapLong),
		SwapShort:         wireFloat(s.SwapShort),
		SpreadFloat:       s.SpreadFloat,
		Digits:            s.Digits,
	})
}

func (s *Symbol) UnmarshalJSON(data []byte) error {
	var w symbolWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	category, err := ParseCategory(w.Category)
	if err != nil {
		return err
	}

	parsed := Symbol{
		Name:              w.Name,
		Category:          category,
		Description:       w.Description,
		BaseCurrency:      w.BaseCurrency,
		QuoteCurrency:     w.QuoteCurrency,
		Point:             fixed.FromFloat64(w.Point),
		TickSize:          fixed.FromFloat64(w.TickSize),
		TickValue:         fixed.FromFloat64(w.TickValue),
		LotSize:           fixed.FromFloat64(w.LotSize),
		MinLot:            fixed.FromFloat64(w.MinLot),
		MaxLot:            fixed.FromFloat64(w.MaxLot),
		LotStep:           fixed.FromFloat64(w.LotStep),
		MarginInitial:     fixed.FromFloat64(w.MarginInitial),
		MarginMaintenance: fixed.FromFloat64(w.MarginMaintenance),
		SwapLong:          fixed.FromFloat64(w.SwapLong),
		SwapShort:         fixed.FromFloat64(w.SwapShort),
		SpreadFloat:       w.SpreadFloat,
		Digits:            w.Digits,
	}
	if err := parsed.Validate(); err != nil {
		return err
	}

	*s = parsed
	return nil
}

func wireFloat(p fixed.Point) float64 {
	f, _ := p.Float64()
	return f
}
