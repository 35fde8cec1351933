package main

import (
	"strconv"
	"strings"
)

// parseInt implements §6.3's integer literal grammar: optional leading
// whitespace, optional sign, decimal digits with an optional trailing
// K/M/k/m multiplier, or 0x/0X followed by 1-16 hex digits reinterpreted as
// signed. Grounded on gothird's literal/runeLiteral in internals.go,
// extended with the multiplier and hex forms TTM additionally requires.
func parseInt(s string) (int64, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return 0, failuref(errDecimalRequired, "empty integer literal")
	}

	if hex, ok := stripHexPrefix(s); ok {
		if len(hex) == 0 || len(hex) > 16 {
			return 0, failuref(errTooManyDigits, "hex literal %q", s)
		}
		u, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, failuref(errDecimalRequired, "invalid hex literal %q", s)
		}
		return int64(u), nil
	}

	sign := int64(1)
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}

	mult := int64(1)
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case 'M', 'm':
			mult = 1 << 20
			rest = rest[:n-1]
		case 'K', 'k':
			mult = 1 << 10
			rest = rest[:n-1]
		}
	}

	if rest == "" || !allDigits(rest) {
		return 0, failuref(errDecimalRequired, "invalid integer literal %q", s)
	}

	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, failuref(errTooManyDigits, "integer literal %q overflows", s)
	}

	v := n * mult * sign
	// detect sign-bit crossing from the multiply/sign application
	if mult != 1 && n != 0 && v/mult/sign != n {
		return 0, failuref(errTooManyDigits, "integer literal %q overflows", s)
	}
	return v, nil
}

func stripHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// formatInt renders an ordinary signed 64-bit integer in base 10 (§6.4).
func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

// formatCreationCount renders the session creation counter as %04d, widening
// naturally past 9999 per spec §4.4.
func formatCreationCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 4 {
		s = strings.Repeat("0", 4-len(s)) + s
	}
	return s
}
