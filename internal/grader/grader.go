// Package grader loads exercise directories and runs their rubrics,
// several directories side by side.
package grader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"golang.org/x/sync/errgroup"
)

// DefaultJobs is the number of exercises graded at once
const DefaultJobs = 4

// Config controls a grading run
type Config struct {
	// Problem forces a rubric; empty infers it from each directory name
	Problem string
	// Jobs bounds the exercises graded in parallel
	Jobs      int
	Overrides problems.Overrides
}

// Result is the outcome of grading one directory. Err is set when the
// rubric could not be chosen, the exercise could not be loaded (Report is
// nil) or the run was cancelled (Report is partial).
type Result struct {
	Dir     string         `json:"dir" yaml:"dir"`
	Problem string         `json:"problem,omitempty" yaml:"problem,omitempty"`
	Report  *rubric.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Err     error          `json:"-" yaml:"-"`
}

// Passed reports whether the exercise loaded and every check passed
func (r *Result) Passed() bool {
	return r.Err == nil && r.Report != nil && r.Report.Passed()
}

// AllPassed reports whether every result passed
func AllPassed(results []*Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return false
		}
	}
	return true
}

// Grader grades exercise directories
type Grader struct {
	cfg Config
}

// New creates a grader
func New(cfg Config) *Grader {
	if cfg.Jobs < 1 {
		cfg.Jobs = DefaultJobs
	}
	return &Grader{cfg: cfg}
}

// Expand resolves doublestar patterns to existing directories. Plain paths
// are kept as given, so a missing directory is reported by Grade.
func Expand(patterns []string) ([]string, error) {
	var dirs []string
	seen := map[string]bool{}
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(filepath.Clean(pattern))
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				add(m)
			}
		}
		if len(matches) == 0 {
			log.Warn("pattern %q matched no directories", pattern)
		}
	}
	return dirs, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// Grade grades dirs with at most Jobs running at once. Results follow the
// order of dirs. The returned error is only ever ctx's.
func (g *Grader) Grade(ctx context.Context, dirs []string) ([]*Result, error) {
	results := make([]*Result, len(dirs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Jobs)

	for i, dir := range dirs {
		eg.Go(func() error {
			results[i] = g.gradeOne(egCtx, dir)
			return egCtx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (g *Grader) gradeOne(ctx context.Context, dir string) *Result {
	res := &Result{Dir: dir, Problem: g.cfg.Problem}
	if res.Problem == "" {
		id, err := problems.Infer(dir)
		if err != nil {
			res.Err = err
			return res
		}
		res.Problem = id
	}
	def, err := problems.Lookup(res.Problem)
	if err != nil {
		res.Err = err
		return res
	}
	def = def.With(g.cfg.Overrides)

	ex, err := exercise.Load(ctx, dir, def.Layout)
	if err != nil {
		res.Err = err
		return res
	}
	report, err := def.Build(ex).Run(ctx)
	res.Report = report
	if err != nil {
		res.Err = err
	}
	passed, failed := report.Counts()
	log.Info("%s (%s): %d passed, %d failed", dir, res.Problem, passed, failed)
	return res
}
