package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSeed reads the caller's seed as a base-36 integer. Surrounding
// whitespace and one leading sign are accepted, then the longest run of
// base-36 digits is parsed and anything after it is ignored ("abc!" reads as
// "abc"). No digits at all, or a value outside int64, is ErrInvalidSeed.
func ParseSeed(input string) (int64, error) {
	s := strings.TrimSpace(input)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && isBase36Digit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q is not a base-36 number", ErrInvalidSeed, input)
	}

	digits := s[:end]
	if negative {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidSeed, input)
	}
	return v, nil
}

// CombineSeed returns toInt(seed, 36) + page, the value the request's random
// stream is seeded with.
func CombineSeed(seed string, page int) (int64, error) {
	base, err := ParseSeed(seed)
	if err != nil {
		return 0, err
	}
	p := int64(page)
	if (p > 0 && base > math.MaxInt64-p) || (p < 0 && base < math.MinInt64-p) {
		return 0, fmt.Errorf("%w: seed %q plus page %d overflows", ErrInvalidSeed, seed, page)
	}
	return base + p, nil
}

func isBase36Digit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
