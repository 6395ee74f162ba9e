package rubric

import (
	"strings"
	"time"
)

// CheckResult is the outcome of one check
type CheckResult struct {
	Name     string        `json:"name" yaml:"name"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Failures []string      `json:"failures,omitempty" yaml:"failures,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// GroupResult is the outcome of one group
type GroupResult struct {
	Title  string         `json:"title,omitempty" yaml:"title,omitempty"`
	Checks []*CheckResult `json:"checks" yaml:"checks"`
}

// Passed reports whether every check of the group passed
func (g *GroupResult) Passed() bool {
	for _, c := range g.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Report is the outcome of a suite run
type Report struct {
	Suite  string         `json:"suite" yaml:"suite"`
	Groups []*GroupResult `json:"groups" yaml:"groups"`
}

// Passed reports whether every check passed
func (r *Report) Passed() bool {
	_, failed := r.Counts()
	return failed == 0
}

// Counts returns the number of passed and failed checks
func (r *Report) Counts() (passed, failed int) {
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			if c.Passed {
				passed++
			} else {
				failed++
			}
		}
	}
	return passed, failed
}

// Failure is a failed check with its group title
type Failure struct {
	Group string
	*CheckResult
}

// FullName joins the group title and the check name
func (f Failure) FullName() string {
	if f.Group == "" {
		return f.Name
	}
	return f.Group + " › " + f.Name
}

// Failed lists the failed checks in run order
func (r *Report) Failed() []Failure {
	var out []Failure
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			if !c.Passed {
				out = append(out, Failure{Group: g.Title, CheckResult: c})
			}
		}
	}
	return out
}

// Check finds a result by check name, optionally qualified with its group
// title as "group › name"
func (r *Report) Check(name string) (*CheckResult, bool) {
	group, check, qualified := strings.Cut(name, " › ")
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			if qualified && g.Title == group && c.Name == check {
				return c, true
			}
			if !qualified && c.Name == name {
				return c, true
			}
		}
	}
	return nil, false
}
