package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// hexLike matches a '#' run that a CSS author meant as a hex colour
var hexLike = regexp.MustCompile(`#[0-9A-Za-z]+\b`)

// Parse parses any CSS colour notation (hex, rgb(), hsl(), named colours)
func Parse(value string) (csscolorparser.Color, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(value))
	if err != nil {
		return c, fmt.Errorf("unsupported color format: %s", value)
	}
	return c, nil
}

// Equal reports whether two CSS colour strings denote the same RGBA colour.
// Unparseable values are compared case-insensitively as text.
func Equal(a, b string) bool {
	ca, errA := Parse(a)
	cb, errB := Parse(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	const eps = 1.0 / 512
	return math.Abs(ca.R-cb.R) < eps && math.Abs(ca.G-cb.G) < eps &&
		math.Abs(ca.B-cb.B) < eps && math.Abs(ca.A-cb.A) < eps
}

// Hex returns the lower-case #rrggbb (or #rrggbbaa) form of a colour
func Hex(value string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return strings.ToLower(c.HexString()), nil
}

// IsValidHex reports whether s is a well-formed hex colour (#rgb, #rgba,
// #rrggbb or #rrggbbaa).
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexCandidates returns every '#'-prefixed word in a declaration value
// together with its byte offset. url() arguments are skipped.
func HexCandidates(value string) (words []string, offsets []int) {
	masked := maskURLs(value)
	for _, loc := range hexLike.FindAllStringIndex(masked, -1) {
		words = append(words, value[loc[0]:loc[1]])
		offsets = append(offsets, loc[0])
	}
	return words, offsets
}

func maskURLs(value string) string {
	lower := strings.ToLower(value)
	b := []byte(value)
	for start := 0; ; {
		i := strings.Index(lower[start:], "url(")
		if i < 0 {
			break
		}
		i += start
		end := strings.IndexByte(lower[i:], ')')
		if end < 0 {
			end = len(lower) - i - 1
		}
		for j := i; j <= i+end && j < len(b); j++ {
			b[j] = ' '
		}
		start = i + end + 1
		if start >= len(lower) {
			break
		}
	}
	return string(b)
}
