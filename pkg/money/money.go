package money

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/halcyonfx/fxcore/pkg/utility/fixed"
)

// Money is an immutable amount bound to a currency. Every constructed value,
// including every arithmetic result, is re-quantized to the currency's
// decimal count with ties rounded away from zero, so chained arithmetic never
// drifts past the currency's smallest unit.
type Money struct {
	amount   fixed.Point
	currency Currency
}

func New(amount fixed.Point, currency Currency) Money {
	return Money{amount.RescaleHalfUp(currency.Decimals()), currency}
}

func Zero(currency Currency) Money {
	return New(fixed.Zero, currency)
}

func NewFromFloat64(amount float64, currency Currency) (Money, error) {
	p, err := fixed.Parse(strconv.FormatFloat(amount, 'f', -1, 64))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return New(p, currency), nil
}

// Parse accepts plain decimal strings, optionally with comma
// thousands-separators ("1,234.56"). No other locale formats are supported.
func Parse(amount string, currency Currency) (Money, error) {
	p, err := fixed.Parse(strings.ReplaceAll(amount, ",", ""))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrParse, amount)
	}
	return New(p, currency), nil
}

func MustParse(amount string, currency Currency) Money {
	m, err := Parse(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() fixed.Point { return m.amount }
func (m Money) Currency() Currency  { return m.currency }
func (m Money) IsZero() bool        { return m.amount.IsZero() }
func (m Money) IsPositive() bool    { return m.amount.IsPos() }
func (m Money) IsNegative() bool    { return m.amount.IsNeg() }

func (m Money) Abs() Money { return Money{m.amount.Abs(), m.currency} }
func (m Money) Neg() Money { return Money{m.amount.Neg(), m.currency} }

func (m Money) Add(o Money) (Money, error) {
	if err := m.sameCurrency(o); err != nil {
		return Money{}, err
	}
	return New(m.amount.Add(o.amount), m.currency), nil
}

func (m Money) Sub(o Money) (Money, error) {
	if err := m.sameCurrency(o); err != nil {
		return Money{}, err
	}
	return New(m.amount.Sub(o.amount), m.currency), nil
}

func (m Money) Mul(factor fixed.Point) Money {
	return New(m.amount.Mul(factor), m.currency)
}

func (m Money) MulInt(factor int) Money {
	return New(m.amount.MulInt(factor), m.currency)
}

func (m Money) Div(divisor fixed.Point) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, m.amount.String())
	}
	return New(m.amount.Div(divisor), m.currency), nil
}

// Cmp returns -1, 0 or 1. Comparing across currencies is a domain error,
// never an implicit conversion.
func (m Money) Cmp(o Money) (int, error) {
	if err := m.sameCurrency(o); err != nil {
		return 0, err
	}
	return m.amount.Cmp(o.amount), nil
}

func (m Money) LessThan(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c < 0, err
}

func (m Money) LessOrEqual(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c <= 0, err
}

func (m Money) GreaterThan(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c > 0, err
}

func (m Money) GreaterOrEqual(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c >= 0, err
}

// Equal is structural: same currency and same quantized amount.
func (m Money) Equal(o Money) bool {
	return m.currency == o.currency && m.amount.Eq(o.amount)
}

// Convert applies an externally sourced exchange rate and re-quantizes to the
// target currency's decimals. Rate sourcing is the caller's problem.
func (m Money) Convert(target Currency, rate fixed.Point) (Money, error) {
	if !rate.IsPos() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidRate, rate.String())
	}
	return New(m.amount.Mul(rate), target), nil
}

// Allocate divides the amount proportionally to the given ratios. The first
// n-1 shares are quantized half-up; the last share is the exact remainder, so
// the shares always sum to the original amount with no rounding leakage.
func (m Money) Allocate(ratios ...fixed.Point) ([]Money, error) {
	total := fixed.Zero
	for _, r := range ratios {
		if r.IsNeg() {
			return nil, fmt.Errorf("%w: ratio %s", ErrInvalidRatios, r.String())
		}
		total = total.Add(r)
	}
	if !total.IsPos() {
		return nil, fmt.Errorf("%w: ratio sum %s", ErrInvalidRatios, total.String())
	}

	shares := make([]Money, len(ratios))
	remainder := m.amount
	for i := 0; i < len(ratios)-1; i++ {
		share := New(m.amount.Mul(ratios[i]).Div(total), m.currency)
		shares[i] = share
		remainder = remainder.Sub(share.amount)
	}
	shares[len(ratios)-1] = Money{remainder, m.currency}
	return shares, nil
}

// Split divides the amount into n parts. All parts but the last carry the
// quantized per-part amount; the last part absorbs the remainder.
func (m Money) Split(n int) ([]Money, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSplit, n)
	}

	part := New(m.amount.DivInt(n), m.currency)
	parts := make([]Money, n)
	for i := 0; i < n-1; i++ {
		parts[i] = part
	}
	parts[n-1] = Money{m.amount.Sub(part.amount.MulInt(n - 1)), m.currency}
	return parts, nil
}

// Format renders the quantized amount, e.g. "$1234.50" for symbol-prefixed
// currencies and "1.23456789 ₿" for the rest.
func (m Money) Format(withSymbol bool) string {
	amount := m.amount.String()
	if !withSymbol {
		return amount
	}
	symbol := m.currency.Symbol()
	if prefixSymbols[symbol] {
		return symbol + amount
	}
	return amount + " " + symbol
}

func (m Money) String() string {
	return m.Format(true)
}

func (m Money) Fields() []zap.Field {
	return []zap.Field{
		zap.String("amount", m.amount.String()),
		zap.String("currency", string(m.currency)),
	}
}

// The wire form carries the amount as a plain JSON number. That boundary is
// the only place precision loss is acceptable; unmarshalling re-quantizes.
type moneyWire struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	f, ok := m.amount.Float64()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, m.amount.String())
	}
	return json.Marshal(moneyWire{Amount: f, Currency: string(m.currency)})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p, err := fixed.Parse(aux.Amount.String())
	if err != nil {
		return fmt.Errorf("%w: %q", ErrParse, aux.Amount.String())
	}
	*m = New(p, Currency(aux.Currency))
	return nil
}

func (m Money) sameCurrency(o Money) error {
	if m.currency != o.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	return nil
}
