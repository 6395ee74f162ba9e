package report

import (
	"io"

	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable prints one row per exercise group with pass/fail counts
func renderTable(w io.Writer, results []*grader.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Exercise", "Problem", "Group", "Passed", "Failed", "Result"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
	})

	var passed, failed int
	for _, r := range results {
		if r.Report != nil {
			for _, g := range r.Report.Groups {
				p, f := 0, 0
				for _, c := range g.Checks {
					if c.Passed {
						p++
					} else {
						f++
					}
				}
				passed += p
				failed += f
				title := g.Title
				if title == "" {
					title = "(top level)"
				}
				t.AppendRow(table.Row{r.Dir, r.Problem, title, p, f, verdict(f == 0)})
			}
		}
		if r.Err != nil {
			t.AppendRow(table.Row{r.Dir, r.Problem, "(setup)", "", "", "ERROR: " + r.Err.Error()})
		}
	}
	t.AppendFooter(table.Row{"", "", "Total", passed, failed, verdict(grader.AllPassed(results))})
	t.Render()
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
