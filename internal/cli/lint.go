package cli

import (
	"fmt"
	"os"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint/csslint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/spf13/cobra"
)

// lintPattern selects the files linted inside a directory argument
const lintPattern = "**/*.{html,htm,css}"

func newLintCmd(a *app) *cobra.Command {
	var noEmbedded bool
	cmd := &cobra.Command{
		Use:   "lint file...",
		Short: "Lint HTML and CSS files",
		Long: `Run the HTML and CSS linters and print their diagnostics.

Directories are searched for .html and .css files. With --problem the
problem's lint options are used; otherwise the linters' defaults, in both
cases with the configured htmllint/csslint options applied on top. The
exit code is 1 when any diagnostic has error severity.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.lintConfig()
			if err != nil {
				return err
			}
			cfg.EmbeddedCSS = !noEmbedded

			m := documents.NewManager()
			var diags []diagnostic.Diagnostic
			for _, arg := range args {
				found, err := lintArg(cmd, m, arg, cfg)
				diags = append(diags, found...)
				if err != nil {
					return err
				}
			}

			if err := report.RenderDiagnostics(cmd.OutOrStdout(), diags, a.cfg.OutputFormat(), a.options()); err != nil {
				return err
			}
			if diagnostic.HasErrors(diags) {
				return ErrFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noEmbedded, "no-embedded-css", false, "skip <style> blocks inside HTML files")
	return cmd
}

func lintArg(cmd *cobra.Command, m *documents.Manager, arg string, cfg lint.Config) ([]diagnostic.Diagnostic, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return lint.Files(cmd.Context(), m, []string{arg}, cfg)
	}

	docs, err := m.LoadGlob(arg, lintPattern)
	if err != nil {
		return nil, err
	}
	var diags []diagnostic.Diagnostic
	for _, doc := range docs {
		found, err := lint.Document(cmd.Context(), doc, cfg)
		if err != nil {
			return diags, err
		}
		diags = append(diags, found...)
	}
	return diags, nil
}

// lintConfig resolves lint options: the problem's when one is configured,
// else the linter defaults, with the configured options merged on top.
// htmllint merges its defaults itself.
func (a *app) lintConfig() (lint.Config, error) {
	html, css, err := a.cfg.Lint()
	if err != nil {
		return lint.Config{}, err
	}
	if a.cfg.Problem == "" {
		return lint.Config{
			HTML: html,
			CSS:  diagnostic.Merge(csslint.DefaultOptions(), css),
		}, nil
	}
	def, err := problems.Lookup(a.cfg.Problem)
	if err != nil {
		return lint.Config{}, fmt.Errorf("lint: %w", err)
	}
	return def.With(problems.Overrides{HTMLLint: html, CSSLint: css}).Lint, nil
}
