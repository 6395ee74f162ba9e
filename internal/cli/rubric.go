package cli

import (
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/spf13/cobra"
)

func newRubricCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rubric [problem]",
		Short: "List the checks of a problem's rubric",
		Long: `List the groups and checks each problem is graded on.

Without an argument every registered problem is listed, or only the one
given with --problem. Use -o yaml or -o json to export the rubric.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return problems.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := problems.IDs()
			switch {
			case len(args) == 1:
				ids = args[:1]
			case a.cfg.Problem != "":
				ids = []string{a.cfg.Problem}
			}

			outlines := make([]rubric.Outline, 0, len(ids))
			for _, id := range ids {
				def, err := problems.Lookup(id)
				if err != nil {
					return err
				}
				outlines = append(outlines, def.Outline())
			}
			return report.RenderRubric(cmd.OutOrStdout(), outlines, a.cfg.OutputFormat(), a.options())
		},
	}
}
