package cli

import (
	"fmt"

	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/brianc020801/INFO-340-Problem-4/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			switch format := a.cfg.OutputFormat(); format {
			case report.FormatJSON, report.FormatYAML:
				return report.Encode(cmd.OutOrStdout(), info, format)
			default:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}
		},
	}
}
