package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
)

// renderText prints a jest-like tree per exercise followed by totals
func renderText(w io.Writer, results []*grader.Result, st styles) error {
	var b strings.Builder
	var exPassed, exFailed, checksPassed, checksFailed int

	for _, r := range results {
		if r.Passed() {
			exPassed++
			b.WriteString(st.badgePass.Render(" PASS "))
		} else {
			exFailed++
			b.WriteString(st.badgeFail.Render(" FAIL "))
		}
		b.WriteString(" " + st.title.Render(r.Dir))
		if r.Problem != "" {
			b.WriteString(" " + st.muted.Render("("+r.Problem+")"))
		}
		b.WriteString("\n")

		if r.Report != nil {
			p, f := r.Report.Counts()
			checksPassed += p
			checksFailed += f
			writeGroups(&b, r.Report, st)
		}
		if r.Err != nil {
			fmt.Fprintf(&b, "  %s %s\n", st.fail.Render("●"), st.fail.Render(r.Err.Error()))
		}
		b.WriteString("\n")
	}

	b.WriteString(summaryLine(st, "Exercises:", exPassed, exFailed) + "\n")
	b.WriteString(summaryLine(st, "Checks:   ", checksPassed, checksFailed) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeGroups(b *strings.Builder, report *rubric.Report, st styles) {
	for _, g := range report.Groups {
		indent := "  "
		if g.Title != "" {
			b.WriteString("  " + g.Title + "\n")
			indent = "    "
		}
		for _, c := range g.Checks {
			if c.Passed {
				fmt.Fprintf(b, "%s%s %s\n", indent, st.pass.Render(markPass), st.muted.Render(c.Name))
				continue
			}
			fmt.Fprintf(b, "%s%s %s\n", indent, st.fail.Render(markFail), c.Name)
			for _, msg := range c.Failures {
				for _, line := range strings.Split(msg, "\n") {
					b.WriteString(indent + "    " + st.fail.Render(line) + "\n")
				}
			}
		}
	}
}

func summaryLine(st styles, label string, passed, failed int) string {
	parts := []string{}
	if failed > 0 {
		parts = append(parts, st.fail.Render(fmt.Sprintf("%d failed", failed)))
	}
	parts = append(parts, st.pass.Render(fmt.Sprintf("%d passed", passed)))
	parts = append(parts, fmt.Sprintf("%d total", passed+failed))
	return st.title.Render(label) + " " + strings.Join(parts, ", ")
}
