package scraper

import (
	"strconv"
	"strings"
)

// ParseAmount extracts a signed integer from display text such as
// "¥12,345" or "-1,200円". Every rune other than an ASCII digit or '-' is
// dropped; the remainder is read as an optional leading minus followed by
// the longest run of digits. Anything unparseable yields 0.
func ParseAmount(text string) int64 {
	kept := keep(text, func(r rune) bool { return isDigit(r) || r == '-' })

	negative := strings.HasPrefix(kept, "-")
	if negative {
		kept = kept[1:]
	}

	end := 0
	for end < len(kept) && isDigit(rune(kept[end])) {
		end++
	}
	if end == 0 {
		return 0
	}

	v, err := strconv.ParseInt(kept[:end], 10, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -v
	}
	return v
}

// ParseUnsigned keeps only digits. Used for figures that are non-negative
// by definition, where a dash is decoration rather than a sign.
func ParseUnsigned(text string) int64 {
	kept := keep(text, isDigit)
	if kept == "" {
		return 0
	}

	v, err := strconv.ParseInt(kept, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func keep(s string, fn func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if fn(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
