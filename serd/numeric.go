package serd

import (
	"math"
	"strconv"
	"strings"
)

// Strtod parses a decimal number from the prefix of s: an optional sign,
// digits, optional fractional part, optional exponent, or one of the
// case-insensitive tokens "nan", "inf"/"infinity" (optionally signed).
// Leading whitespace is skipped. It returns the parsed value and the byte
// offset of the first unconsumed rune; ok is false if no number could be
// parsed at all.
func Strtod(s string) (value float64, end int, ok bool) {
	i := 0
	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	start := i

	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	rest := s[i:]
	switch {
	case hasFoldPrefix(rest, "infinity"):
		return sign * math.Inf(1), i + len("infinity"), true
	case hasFoldPrefix(rest, "inf"):
		return sign * math.Inf(1), i + len("inf"), true
	case hasFoldPrefix(rest, "nan"):
		return math.NaN(), i + len("nan"), true
	}

	digitsStart := i
	for i < len(s) && isASCIIDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isASCIIDigit(s[i]) {
			i++
		}
	}
	if i == digitsStart || (i == digitsStart+1 && s[digitsStart] == '.') {
		return 0, start, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isASCIIDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	text := s[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, start, false
	}
	return v, i, true
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
