package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderRubric lists the groups and checks of each outline
func RenderRubric(w io.Writer, outlines []rubric.Outline, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		st := newStyles(w, opts.Color)
		var b strings.Builder
		for i, o := range outlines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(st.title.Render(o.Suite) + "\n")
			for _, g := range o.Groups {
				indent := "  "
				if g.Title != "" {
					b.WriteString("  " + g.Title + "\n")
					indent = "    "
				}
				for _, c := range g.Checks {
					b.WriteString(indent + st.muted.Render("-") + " " + c + "\n")
				}
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Problem", "Group", "Check"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
			{Number: 2, AutoMerge: true},
		})
		for _, o := range outlines {
			for _, g := range o.Groups {
				for _, c := range g.Checks {
					t.AppendRow(table.Row{o.Suite, g.Title, c})
				}
			}
		}
		t.Render()
		return nil
	case FormatJSON, FormatYAML:
		return Encode(w, outlines, format)
	}
	return fmt.Errorf("unknown format %q", format)
}
