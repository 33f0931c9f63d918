package model

import (
	"strconv"
	"strings"
)

// The engine carries three numeric-validity predicates on purpose. Each
// endpoint's output depends on the one it uses, so they stay separate.

// IsDigits reports whether s is a non-empty run of ASCII digits. Zero passes.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidCount is the integer-only predicate: all digits and strictly positive.
// Zero is indistinguishable from an unparsable cell.
func ValidCount(s string) bool {
	if !IsDigits(s) {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

// ValidDecimal accepts digits with at most one decimal point and a strictly
// positive value.
func ValidDecimal(s string) bool {
	if !IsDigits(strings.Replace(s, ".", "", 1)) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f > 0
}

// IsZero reports whether s is a plain numeric zero such as "0", "00" or "0.00".
func IsZero(s string) bool {
	if !IsDigits(strings.Replace(s, ".", "", 1)) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}

// Int returns the integer value of a cell, truncating a decimal part.
// Callers check validity first; invalid input yields 0.
func Int(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// SumCount adds col across rows, skipping cells that fail ValidCount.
func SumCount(rows []Row, col string) int {
	total := 0
	for _, r := range rows {
		if v := r[col]; ValidCount(v) {
			total += Int(v)
		}
	}
	return total
}

// SumDecimal adds col across rows, skipping cells that fail ValidDecimal.
func SumDecimal(rows []Row, col string) int {
	total := 0
	for _, r := range rows {
		if v := r[col]; ValidDecimal(v) {
			total += Int(v)
		}
	}
	return total
}
