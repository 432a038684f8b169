package instrument

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the closed set of instrument classes.
type Category string

const (
	CategoryForex     Category = "forex"
	CategoryIndex     Category = "index"
	CategoryCommodity Category = "commodity"
	CategoryStock     Category = "stock"
	CategoryCrypto    Category = "crypto"
	CategoryFutures   Category = "futures"
	CategoryOptions   Category = "options"
)

var ErrUnknownCategory = errors.New("unknown instrument category")

var categories = map[Category]bool{
	CategoryForex:     true,
	CategoryIndex:     true,
	CategoryCommodity: true,
	CategoryStock:     true,
	CategoryCrypto:    true,
	CategoryFutures:   true,
	CategoryOptions:   true,
}

func (c Category) Valid() bool {
	return categories[c]
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory is case-insensitive, so configuration may carry either
// "forex" or "FOREX".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
