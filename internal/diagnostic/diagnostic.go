package diagnostic

import (
	"fmt"
	"sort"

	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
)

// Severity of a lint finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single lint finding
type Diagnostic struct {
	Rule     string         `json:"rule" yaml:"rule"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
	File     string         `json:"file,omitempty" yaml:"file,omitempty"`
	Range    position.Range `json:"range" yaml:"range"`
}

// String formats the diagnostic the way stylelint and htmllint print them:
// file:line:col severity message (rule)
func (d Diagnostic) String() string {
	loc := d.Range.Start.String()
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	return fmt.Sprintf("%s %s %s (%s)", loc, d.Severity, d.Message, d.Rule)
}

// New builds a diagnostic. Severity is left empty for the registry to fill
// in from the rule definition.
func New(rule string, r position.Range, format string, args ...any) Diagnostic {
	return Diagnostic{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Range:   r,
	}
}

// HasErrors reports whether any diagnostic has error severity
func HasErrors(diags []Diagnostic) bool {
	return Count(diags, SeverityError) > 0
}

// Count returns the number of diagnostics with the given severity
func Count(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Sort orders diagnostics by file, then position, then rule
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Range.Start != b.Range.Start {
			return a.Range.Start.Before(b.Range.Start)
		}
		return a.Rule < b.Rule
	})
}

// SetFile stamps every diagnostic with a file name
func SetFile(diags []Diagnostic, file string) {
	for i := range diags {
		diags[i].File = file
	}
}
