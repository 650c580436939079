package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Address is a ledger account address: "0x" followed by 64 hex characters.
type Address string

const addressLength = 66

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// ParseAddress validates and normalises an address string.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) != addressLength || !addressPattern.MatchString(s) {
		return "", fmt.Errorf("invalid address %q: want 0x-prefixed 64 hex chars", s)
	}
	return Address(strings.ToLower(s)), nil
}

// IsValidAddress reports whether s is a well-formed ledger address.
func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

func (a Address) String() string { return string(a) }

// Short returns a truncated display form (0x1234…abcd).
func (a Address) Short() string {
	if len(a) < 12 {
		return string(a)
	}
	return string(a[:6]) + "…" + string(a[len(a)-4:])
}
