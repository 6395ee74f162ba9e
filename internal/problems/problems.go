// Package problems holds the rubric of each exercise, keyed by problem id
// (problem-a, problem-b). Rubrics register themselves from init().
package problems

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/exercise"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/lint/csslint"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
)

// ErrUnknownProblem is returned for ids without a registered rubric
var ErrUnknownProblem = errors.New("unknown problem")

// BuildFunc creates the suite for a loaded exercise. lintCfg holds the
// options of the source validity checks.
type BuildFunc func(ex *exercise.Exercise, lintCfg lint.Config) *rubric.Suite

// Definition describes one problem: where its files live, how its source
// is linted and how its rubric is built.
type Definition struct {
	ID     string
	Title  string
	Layout exercise.Layout
	Lint   lint.Config
	Rubric BuildFunc
}

// Build creates the rubric suite for ex
func (d Definition) Build(ex *exercise.Exercise) *rubric.Suite {
	return d.Rubric(ex, d.Lint)
}

// Outline lists the groups and checks of the rubric without grading
func (d Definition) Outline() rubric.Outline {
	return d.Build(exercise.Empty(d.Layout)).Outline()
}

// Overrides replace parts of a definition from configuration
type Overrides struct {
	HTMLFile string
	CSSFile  string
	// HTMLLint and CSSLint are merged over the problem's own options
	HTMLLint diagnostic.Options
	CSSLint  diagnostic.Options
}

// With returns a copy of d with o applied
func (d Definition) With(o Overrides) Definition {
	if o.HTMLFile != "" {
		d.Layout.HTMLFile = o.HTMLFile
	}
	if o.CSSFile != "" {
		d.Layout.CSSFile = o.CSSFile
	}
	if len(o.HTMLLint) > 0 {
		d.Lint.HTML = diagnostic.Merge(d.Lint.HTML, o.HTMLLint)
	}
	if len(o.CSSLint) > 0 {
		base := d.Lint.CSS
		if base == nil {
			base = csslint.DefaultOptions()
		}
		d.Lint.CSS = diagnostic.Merge(base, o.CSSLint)
	}
	return d
}

var (
	mu       sync.RWMutex
	registry = map[string]Definition{}
)

// Register adds a problem definition. It panics on a duplicate id.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[def.ID]; exists {
		panic(fmt.Sprintf("problem %s registered twice", def.ID))
	}
	registry[def.ID] = def
}

// Lookup returns the definition of id
func Lookup(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()
	def, ok := registry[strings.ToLower(id)]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownProblem, id, strings.Join(ids(), ", "))
	}
	return def, nil
}

// IDs returns the registered ids in order
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return ids()
}

func ids() []string {
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Infer guesses the problem of an exercise directory from its name, or the
// name of the closest parent that mentions a problem id
// (submissions/alice/problem-b).
func Infer(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	known := IDs()
	for p := abs; ; p = filepath.Dir(p) {
		base := strings.ToLower(filepath.Base(p))
		for _, id := range known {
			if strings.Contains(base, id) {
				return id, nil
			}
		}
		if filepath.Dir(p) == p {
			break
		}
	}
	return "", fmt.Errorf("%w: cannot infer the problem of %s; use --problem", ErrUnknownProblem, dir)
}
