// Package cli provides the gradecheck command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/config"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/brianc020801/INFO-340-Problem-4/internal/version"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrFailed is returned by commands whose output already explains the
// failure, so Execute only sets the exit code
var ErrFailed = errors.New("checks failed")

// usageError marks bad arguments and flags
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// app carries the state shared by the commands of one invocation
type app struct {
	cfgFile string
	cfg     *config.Config
}

func (a *app) options() report.Options {
	return report.Options{Color: a.cfg.Color()}
}

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gradecheck",
		Short: "Grade INFO 340 layout exercises",
		Long: `gradecheck grades HTML/CSS exercises against their rubric.

Each exercise directory is matched to a problem by name (problem-a,
problem-b) unless --problem is given. The report lists every check with
its failure messages.`,
		Version: version.GetVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(cfg.Level())
			if cfg.File != "" {
				log.Debug("using config file %s", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./gradecheck.yaml)")
	flags.StringP("format", "o", "", "output format (text|table|json|yaml)")
	flags.BoolP("verbose", "v", false, "verbose logging")
	flags.Bool("no-color", false, "disable colored output")
	flags.IntP("jobs", "j", 0, "exercises graded in parallel")
	flags.StringP("problem", "p", "", "problem id, instead of inferring it from the directory name")
	flags.String("log-level", "", "log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(report.Formats))
		for i, f := range report.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("problem", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return problems.IDs(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newGradeCmd(a))
	rootCmd.AddCommand(newLintCmd(a))
	rootCmd.AddCommand(newRubricCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	return rootCmd
}

// usageArgs marks argument validation failures as usage errors
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// Execute runs the root command with os.Args and returns the exit code
func Execute(ctx context.Context) int {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes gradecheck with args, writing output to stdout and errors
// to stderr, and returns the exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	code := ExitCode(err)
	if err != nil && !errors.Is(err, ErrFailed) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if code == ExitUsage {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		}
	}
	return code
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, problems.ErrUnknownProblem),
		isCobraUsage(err):
		return ExitUsage
	}
	return ExitFailure
}

// cobra reports unknown commands and flags parsed before the flag error
// func is consulted as plain errors
func isCobraUsage(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
