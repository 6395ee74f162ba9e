// Package rubric runs named, independent checks grouped under headings,
// the way a jest suite of describe/test blocks runs.
//
// Checks receive a *T, which satisfies testify's require.TestingT, so they
// are written with require and assert:
//
//	g.Test("has a viewport meta tag", func(t *rubric.T) {
//		require.Equal(t, 1, doc.Find(`meta[name="viewport"]`).Length())
//	})
//
// A failed require stops the check; a failed assert records the failure and
// lets the check continue. A panic fails only the check that raised it.
package rubric

import (
	"context"
	"fmt"
	"time"

	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
)

// CheckFunc is the body of a check
type CheckFunc func(t *T)

// Check is a single named assertion block
type Check struct {
	Name string
	Fn   CheckFunc
}

// Group is a titled list of checks. The untitled group holds top-level
// checks.
type Group struct {
	Title  string
	Checks []*Check
}

// Test adds a check to the group
func (g *Group) Test(name string, fn CheckFunc) {
	g.Checks = append(g.Checks, &Check{Name: name, Fn: fn})
}

// Suite is an ordered list of groups
type Suite struct {
	Name   string
	Groups []*Group
}

// NewSuite creates an empty suite
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Describe adds a titled group and lets fn populate it
func (s *Suite) Describe(title string, fn func(g *Group)) {
	g := &Group{Title: title}
	s.Groups = append(s.Groups, g)
	fn(g)
}

// Test adds a top-level check
func (s *Suite) Test(name string, fn CheckFunc) {
	if n := len(s.Groups); n > 0 && s.Groups[n-1].Title == "" {
		s.Groups[n-1].Test(name, fn)
		return
	}
	g := &Group{}
	g.Test(name, fn)
	s.Groups = append(s.Groups, g)
}

// Len returns the number of checks in the suite
func (s *Suite) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Checks)
	}
	return n
}

// Run evaluates every check in declaration order. Checks never affect each
// other. When ctx is cancelled the remaining checks are reported as not run
// and ctx's error is returned alongside the report.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	report := &Report{Suite: s.Name}
	var runErr error
	for _, g := range s.Groups {
		gr := &GroupResult{Title: g.Title}
		report.Groups = append(report.Groups, gr)
		for _, c := range g.Checks {
			if runErr == nil {
				runErr = ctx.Err()
			}
			if runErr != nil {
				gr.Checks = append(gr.Checks, &CheckResult{
					Name:     c.Name,
					Failures: []string{fmt.Sprintf("not run: %v", runErr)},
				})
				continue
			}
			gr.Checks = append(gr.Checks, runCheck(ctx, c))
		}
	}
	passed, failed := report.Counts()
	log.Debug("suite %s: %d passed, %d failed", s.Name, passed, failed)
	return report, runErr
}

func runCheck(ctx context.Context, c *Check) (result *CheckResult) {
	t := &T{ctx: ctx, name: c.Name}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if _, stop := r.(failNow); !stop {
				t.fail(fmt.Sprintf("panic: %v", r))
			}
		}
		result = &CheckResult{
			Name:     c.Name,
			Passed:   !t.failed,
			Failures: t.failures,
			Duration: time.Since(start),
		}
	}()
	c.Fn(t)
	return result
}

// Outline is the shape of a suite without results
type Outline struct {
	Suite  string         `json:"suite" yaml:"suite"`
	Groups []OutlineGroup `json:"groups" yaml:"groups"`
}

// OutlineGroup lists the check names of a group
type OutlineGroup struct {
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Checks []string `json:"checks" yaml:"checks"`
}

// Outline returns the group titles and check names of s
func (s *Suite) Outline() Outline {
	out := Outline{Suite: s.Name}
	for _, g := range s.Groups {
		og := OutlineGroup{Title: g.Title}
		for _, c := range g.Checks {
			og.Checks = append(og.Checks, c.Name)
		}
		out.Groups = append(out.Groups, og)
	}
	return out
}
