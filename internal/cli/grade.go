package cli

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/spf13/cobra"
)

func newGradeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade [dir...]",
		Short: "Grade exercise directories",
		Long: `Grade one or more exercise directories and print the report.

Directories may be doublestar patterns such as 'submissions/*/problem-*'.
With no arguments the working directory is graded. The exit code is 1 when
any check fails or an exercise cannot be loaded.`,
		Example: `  gradecheck grade problem-a
  gradecheck grade -o table 'submissions/*/problem-b'
  gradecheck grade -p problem-a --html-file home.html ./site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			dirs, err := grader.Expand(args)
			if err != nil {
				return usageError{err}
			}
			gc, err := a.cfg.Grader()
			if err != nil {
				return err
			}

			results, gradeErr := grader.New(gc).Grade(cmd.Context(), dirs)
			if err := report.Render(cmd.OutOrStdout(), results, a.cfg.OutputFormat(), a.options()); err != nil {
				return err
			}
			if gradeErr != nil {
				return gradeErr
			}
			if !grader.AllPassed(results) {
				return ErrFailed
			}
			return nil
		},
	}
	cmd.Flags().String("html-file", "", "HTML file relative to each exercise directory")
	cmd.Flags().String("css-file", "", "CSS file relative to each exercise directory")
	return cmd
}
