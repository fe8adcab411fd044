// Package valueobject contains domain value objects for the goal tracking system.
package valueobject

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.,-]`)
	// leadingNumber matches the longest numeric prefix ("12-3" parses as 12).
	leadingNumber = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
)

// NormalizeText trims and lowercases text so area and KPI names can be
// compared case- and whitespace-insensitively.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SameText reports whether a and b are equal after normalization.
func SameText(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}

// CleanNumber parses locale-formatted numbers such as "1.234,56", "0,75",
// "R$ 1.500" or "85%". Malformed or empty input yields 0.
//
// When a comma is present, periods are thousands separators and the comma is
// the decimal point. Otherwise a final dot-group of exactly three digits marks
// the periods as thousands separators.
func CleanNumber(value string) float64 {
	str := strings.TrimSpace(value)
	if str == "" {
		return 0
	}

	str = nonNumericChars.ReplaceAllString(str, "")

	if strings.Contains(str, ",") {
		str = strings.ReplaceAll(str, ".", "")
		str = strings.Replace(str, ",", ".", 1)
	} else {
		parts := strings.Split(str, ".")
		if len(parts) > 1 && len(parts[len(parts)-1]) == 3 {
			str = strings.ReplaceAll(str, ".", "")
		}
	}

	match := leadingNumber.FindString(str)
	if match == "" {
		return 0
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return num
}

// CleanNonNegative is CleanNumber clamped at zero, used for weights and
// attainment percentages.
func CleanNonNegative(value string) float64 {
	num := CleanNumber(value)
	if num < 0 {
		return 0
	}
	return num
}
