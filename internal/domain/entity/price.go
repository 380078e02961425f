package entity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyInput     = errors.New("input is empty")
	ErrInvalidPrice   = errors.New("price must be a positive number")
	ErrInvalidCommand = errors.New("unknown command")
)

// Ixtiyoriy ishora, raqamlar va bitta o'nlik nuqta. Eksponenta, minglik ajratgich
// va vergul qabul qilinmaydi.
var priceFormat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParsePrice narxni tekshirish va o'qish
func ParsePrice(text string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(text)
	if !priceFormat.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	price, err := decimal.NewFromString(strings.TrimPrefix(raw, "+"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidPrice, raw, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidPrice, raw)
	}

	return price, nil
}

// IsValidPrice matn musbat o'nlik son ekanini tekshirish
func IsValidPrice(text string) (decimal.Decimal, bool) {
	price, err := ParsePrice(text)
	if err != nil {
		return decimal.Zero, false
	}
	return price, true
}
