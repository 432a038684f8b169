package money

import "errors"

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidRate      = errors.New("conversion rate must be positive")
	ErrInvalidRatios    = errors.New("allocation ratios must be positive")
	ErrInvalidSplit     = errors.New("split count must be positive")
	ErrInvalidAmount    = errors.New("amount is not a finite number")
	ErrParse            = errors.New("amount is not parsable")
)
