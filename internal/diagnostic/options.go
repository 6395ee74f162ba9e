package diagnostic

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Options maps a rule id to its option. A missing rule, false or null
// disables it; true enables it with defaults; any other value is the rule's
// option (a list for attr-bans, a style name for class-style).
type Options map[string]any

// Enabled reports whether rule is switched on
func (o Options) Enabled(rule string) bool {
	v, ok := o[rule]
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Value returns the raw option of rule
func (o Options) Value(rule string) any {
	return o[rule]
}

// String returns a string option, or def when the option is not a string
func (o Options) String(rule, def string) string {
	if s, ok := o[rule].(string); ok {
		return s
	}
	return def
}

// Strings returns a list option, or def when the option is not a list
func (o Options) Strings(rule string, def []string) []string {
	switch v := o[rule].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return def
}

// Merge returns a copy of base with every key of over applied on top
func Merge(base, over Options) Options {
	out := make(Options, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// ParseOptions reads lint options from JSON with comments. A top-level
// "rules" object (the stylelint layout) is used when present, otherwise the
// whole object is the option map (the htmllint layout).
func ParseOptions(data []byte) (Options, error) {
	var raw map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse lint options: %w", err)
	}
	if rules, ok := raw["rules"].(map[string]any); ok {
		raw = rules
	}
	opts := make(Options, len(raw))
	for rule, v := range raw {
		opts[rule] = unwrapStylelint(v)
	}
	return opts, nil
}

// unwrapStylelint turns stylelint's [option, {secondary}] form into option
func unwrapStylelint(v any) any {
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		return v
	}
	if _, secondary := list[1].(map[string]any); secondary {
		return list[0]
	}
	return v
}

// LoadOptions reads a .htmllintrc or .stylelintrc file
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: rc paths come from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
