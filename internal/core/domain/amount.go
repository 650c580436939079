package domain

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// displayFractionDigits is the fixed truncation applied to formatted balances.
const displayFractionDigits = 4

// ToBaseUnits converts a human decimal string ("1.5") into an integer amount of
// the token's smallest unit. Fractional digits beyond the token's precision are
// truncated, matching the display convention.
func ToBaseUnits(amount string, decimals int) (*uint256.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("negative amount %q", amount)
	}

	intPart := amount
	fracPart := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		intPart, fracPart = amount[:i], amount[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return nil, fmt.Errorf("malformed amount %q", amount)
	}

	if len(fracPart) > decimals {
		fracPart = fracPart[:decimals]
	}
	fracPart += strings.Repeat("0", decimals-len(fracPart))

	v, err := uint256.FromDecimal(canonicalDecimal(intPart + fracPart))
	if err != nil {
		return nil, fmt.Errorf("amount out of range: %w", err)
	}
	return v, nil
}

// FromBaseUnits renders a base-unit amount ("1000000000") as a decimal string
// truncated to four fractional digits, with trailing zeros stripped.
func FromBaseUnits(baseUnits string, decimals int) (string, error) {
	baseUnits = strings.TrimSpace(baseUnits)
	if baseUnits == "" || !isDigits(baseUnits) {
		return "", fmt.Errorf("malformed base-unit amount %q", baseUnits)
	}

	v, err := uint256.FromDecimal(canonicalDecimal(baseUnits))
	if err != nil {
		return "", fmt.Errorf("base-unit amount out of range: %w", err)
	}

	divisor := pow10(decimals)
	quot, rem := new(uint256.Int), new(uint256.Int)
	quot.DivMod(v, divisor, rem)

	frac := rem.Dec()
	frac = strings.Repeat("0", decimals-len(frac)) + frac
	if len(frac) > displayFractionDigits {
		frac = frac[:displayFractionDigits]
	}

	out := quot.Dec() + "." + frac
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "" {
		out = "0"
	}
	return out, nil
}

// ParseBaseUnits validates a stored base-unit string and returns it as an integer.
// The amount must be a strictly positive base-10 literal.
func ParseBaseUnits(baseUnits string) (*uint256.Int, error) {
	if baseUnits == "" || !isDigits(baseUnits) {
		return nil, fmt.Errorf("malformed base-unit amount %q", baseUnits)
	}
	v, err := uint256.FromDecimal(canonicalDecimal(baseUnits))
	if err != nil {
		return nil, fmt.Errorf("base-unit amount out of range: %w", err)
	}
	if v.IsZero() {
		return nil, fmt.Errorf("amount must be positive")
	}
	return v, nil
}

func pow10(n int) *uint256.Int {
	ten := uint256.NewInt(10)
	out := uint256.NewInt(1)
	for i := 0; i < n; i++ {
		out.Mul(out, ten)
	}
	return out
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func canonicalDecimal(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
