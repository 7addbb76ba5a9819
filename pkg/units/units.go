// Package units converts between a ledger's base (atomic) unit and its
// display unit without going through floating point.
package units

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Only plain digits are accepted. decimal.NewFromString also takes exponent
// notation, and "1e50000000" would expand to fifty million digits.
var (
	baseRe    = regexp.MustCompile(`^-?[0-9]+$`)
	displayRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// ParseBase parses an integer amount of base units.
func ParseBase(amount string) (decimal.Decimal, error) {
	if !baseRe.MatchString(amount) {
		return decimal.Zero, fmt.Errorf("base amount %q is not an integer", amount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse base amount %q: %w", amount, err)
	}
	return d, nil
}

// ParseDisplay parses a plain decimal amount in the display unit.
func ParseDisplay(amount string) (decimal.Decimal, error) {
	if !displayRe.MatchString(amount) {
		return decimal.Zero, fmt.Errorf("display amount %q is not a plain decimal", amount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse display amount %q: %w", amount, err)
	}
	return d, nil
}

// ToBase converts a display amount (e.g. "0.01" BTC) to base units.
// Precision beyond decimals is rejected instead of rounded.
func ToBase(display string, decimals int32) (string, error) {
	d, err := ParseDisplay(display)
	if err != nil {
		return "", err
	}
	base := d.Shift(decimals)
	if !base.IsInteger() {
		return "", fmt.Errorf("display amount %q has more than %d decimal places", display, decimals)
	}
	return base.String(), nil
}

// ToDisplay converts base units to the display unit, trimming trailing zeros.
func ToDisplay(base string, decimals int32) (string, error) {
	d, err := ParseBase(base)
	if err != nil {
		return "", err
	}
	return d.Shift(-decimals).String(), nil
}
