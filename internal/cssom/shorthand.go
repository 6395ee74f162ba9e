package cssom

import (
	"fmt"
	"strings"
)

var fourSides = [4]string{"top", "right", "bottom", "left"}

// shorthands maps a four-sided shorthand to the pattern of its longhands
var shorthands = map[string][2]string{
	"margin":       {"margin", ""},
	"padding":      {"padding", ""},
	"border-width": {"border", "width"},
	"border-style": {"border", "style"},
	"border-color": {"border", "color"},
}

// ShorthandOf returns the four-sided shorthand a longhand belongs to, e.g.
// "margin" for "margin-right".
func ShorthandOf(longhand string) (string, bool) {
	for short, parts := range shorthands {
		for _, side := range fourSides {
			if longhandName(parts[0], parts[1], side) == longhand {
				return short, true
			}
		}
	}
	return "", false
}

// SplitShorthand distributes the 1 to 4 values of a four-sided shorthand
// onto its longhands, the same way browsers do (top, right, bottom, left).
func SplitShorthand(prop, value string) (map[string]string, error) {
	parts, ok := shorthands[prop]
	if !ok {
		return nil, fmt.Errorf("not a four-sided shorthand: %s", prop)
	}
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", prop)
	}

	var sides [4]string
	switch len(fields) {
	case 1:
		sides = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		sides = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		sides = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		sides = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}

	out := make(map[string]string, 4)
	for i, side := range fourSides {
		out[longhandName(parts[0], parts[1], side)] = sides[i]
	}
	return out, nil
}

func longhandName(pre, suf, side string) string {
	if suf == "" {
		return pre + "-" + side
	}
	return pre + "-" + side + "-" + suf
}
