// Package report renders grading results, lint diagnostics and rubric
// outlines as text, tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"gopkg.in/yaml.v3"
)

// Format is an output format
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a format name. "" means text and "yml" is YAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", name, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options tune the human readable formats
type Options struct {
	// Color allows ANSI styling when w is a terminal
	Color bool
}

// exerciseView is the encoded form of a grading result
type exerciseView struct {
	Dir     string                `json:"dir" yaml:"dir"`
	Problem string                `json:"problem,omitempty" yaml:"problem,omitempty"`
	Passed  bool                  `json:"passed" yaml:"passed"`
	Error   string                `json:"error,omitempty" yaml:"error,omitempty"`
	Checks  *counts               `json:"checks,omitempty" yaml:"checks,omitempty"`
	Groups  []*rubric.GroupResult `json:"groups,omitempty" yaml:"groups,omitempty"`
}

type counts struct {
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
	Total  int `json:"total" yaml:"total"`
}

func viewOf(r *grader.Result) exerciseView {
	v := exerciseView{Dir: r.Dir, Problem: r.Problem, Passed: r.Passed()}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	if r.Report != nil {
		p, f := r.Report.Counts()
		v.Checks = &counts{Passed: p, Failed: f, Total: p + f}
		v.Groups = r.Report.Groups
	}
	return v
}

// Render writes grading results in format
func Render(w io.Writer, results []*grader.Result, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		return renderText(w, results, newStyles(w, opts.Color))
	case FormatTable:
		return renderTable(w, results)
	case FormatJSON, FormatYAML:
		views := make([]exerciseView, len(results))
		for i, r := range results {
			views[i] = viewOf(r)
		}
		return Encode(w, views, format)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Encode writes v as JSON or YAML
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q cannot encode data", format)
}
