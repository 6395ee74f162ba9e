package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderDiagnostics writes lint findings in format. Text output groups
// them by file the way stylelint's string formatter does.
func RenderDiagnostics(w io.Writer, diags []diagnostic.Diagnostic, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		return diagnosticsText(w, diags, newStyles(w, opts.Color))
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Position", "Severity", "Rule", "Message"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
		for _, d := range diags {
			t.AppendRow(table.Row{d.File, d.Range.Start.String(), string(d.Severity), d.Rule, d.Message})
		}
		t.Render()
		return nil
	case FormatJSON, FormatYAML:
		if diags == nil {
			diags = []diagnostic.Diagnostic{}
		}
		return Encode(w, diags, format)
	}
	return fmt.Errorf("unknown format %q", format)
}

func diagnosticsText(w io.Writer, diags []diagnostic.Diagnostic, st styles) error {
	var b strings.Builder
	file := "\x00"
	for _, d := range diags {
		if d.File != file {
			if file != "\x00" {
				b.WriteString("\n")
			}
			file = d.File
			b.WriteString(st.title.Render(file) + "\n")
		}
		mark := st.fail.Render("✖")
		if d.Severity == diagnostic.SeverityWarning {
			mark = st.warn.Render("⚠")
		}
		fmt.Fprintf(&b, "  %-7s %s  %s  %s\n", d.Range.Start.String(), mark, d.Message, st.muted.Render(d.Rule))
	}

	errs := diagnostic.Count(diags, diagnostic.SeverityError)
	warns := diagnostic.Count(diags, diagnostic.SeverityWarning)
	if len(diags) > 0 {
		b.WriteString("\n")
	}
	summary := fmt.Sprintf("%d %s (%d %s, %d %s)",
		len(diags), plural(len(diags), "problem"),
		errs, plural(errs, "error"),
		warns, plural(warns, "warning"))
	if errs > 0 {
		summary = st.fail.Render(summary)
	} else if warns > 0 {
		summary = st.warn.Render(summary)
	}
	b.WriteString(summary + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
