package fixed

import (
	"github.com/govalues/decimal"
	"go.uber.org/zap/zapcore"
)

// Point is an unsafe wrapper around decimal implementation. Caller must make sure the calculations
// are correct and will not result in an error state, otherwise it will panic
type Point struct {
	v decimal.Decimal
}

var (
	Zero    = MustNew(0, 0)
	One     = MustNew(1, 0)
	Two     = MustNew(2, 0)
	Ten     = MustNew(10, 0)
	Hundred = MustNew(100, 0)
)

func New(value int64, scale int) (Point, error) {
	v, err := decimal.New(value, scale)
	if err != nil {
		return Point{}, err
	}
	return Point{v}, nil
}

func MustNew(value int64, scale int) Point {
	return Point{decimal.MustNew(value, scale)}
}

func FromInt(value int, scale int) Point {
	return Point{must(decimal.New(int64(value), scale))}
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

func Parse(value string) (Point, error) {
	v, err := decimal.Parse(value)
	if err != nil {
		return Point{}, err
	}
	return Point{v}, nil
}

func MustParse(value string) Point {
	return Point{decimal.MustParse(value)}
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }
func (p Point) Scale() int               { return p.v.Scale() }

func (p Point) Abs() Point { return Point{p.v.Abs()} }
func (p Point) Neg() Point { return Point{p.v.Neg()} }

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }
func (p Point) Mul(o Point) Point { return Point{must(p.v.Mul(o.v))} }
func (p Point) Div(o Point) Point { return Point{must(p.v.Quo(o.v))} }

func (p Point) MulInt64(o int64) Point { return Point{must(p.v.Mul(decimal.MustNew(o, 0)))} }
func (p Point) MulInt(o int) Point     { return Point{must(p.v.Mul(decimal.MustNew(int64(o), 0)))} }
func (p Point) DivInt64(o int64) Point { return Point{must(p.v.Quo(decimal.MustNew(o, 0)))} }
func (p Point) DivInt(o int) Point     { return Point{must(p.v.Quo(decimal.MustNew(int64(o), 0)))} }

// QuoRem returns the integer quotient and the remainder of p/o.
func (p Point) QuoRem(o Point) (Point, Point) {
	q, r, err := p.v.QuoRem(o.v)
	if err != nil {
		panic(err)
	}
	return Point{q}, Point{r}
}

func (p Point) Cmp(o Point) int  { return p.v.Cmp(o.v) }
func (p Point) Eq(o Point) bool  { return p.v.Cmp(o.v) == 0 }
func (p Point) Gt(o Point) bool  { return p.v.Cmp(o.v) > 0 }
func (p Point) Lt(o Point) bool  { return p.v.Cmp(o.v) < 0 }
func (p Point) Gte(o Point) bool { return p.v.Cmp(o.v) >= 0 }
func (p Point) Lte(o Point) bool { return p.v.Cmp(o.v) <= 0 }

func (p Point) IsZero() bool { return p.v.IsZero() }
func (p Point) IsNeg() bool  { return p.v.IsNeg() }
func (p Point) IsPos() bool  { return p.v.IsPos() }
func (p Point) Sign() int    { return p.v.Sign() }

func (p Point) Trunc(scale int) Point   { return Point{p.v.Trunc(scale)} }
func (p Point) Rescale(scale int) Point { return Point{p.v.Rescale(scale)} }

// RescaleHalfUp quantizes p to the given scale with ties rounded away from
// zero. The underlying library rounds half-even, so monetary code must not
// rescale through it directly. Idempotent on values already at the target scale.
func (p Point) RescaleHalfUp(scale int) Point {
	half := Point{decimal.MustNew(5, scale+1)}
	q := p.Abs().Add(half).Trunc(scale)
	if p.IsNeg() {
		q = q.Neg()
	}
	return q.Rescale(scale)
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(data []byte) error {
	v, err := decimal.Parse(string(data))
	if err != nil {
		return err
	}
	p.v = v
	return nil
}

func (p Point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("decimal", p.v.String())
	return nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
