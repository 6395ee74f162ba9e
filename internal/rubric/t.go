package rubric

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// failNow is the panic value FailNow uses to unwind a check
type failNow struct{}

// T is the handle a check reports through. It implements
// require.TestingT and assert.TestingT.
type T struct {
	ctx      context.Context
	name     string
	failed   bool
	failures []string
}

// Errorf records a failure and lets the check continue
func (t *T) Errorf(format string, args ...any) {
	t.fail(summarize(fmt.Sprintf(format, args...)))
}

// FailNow marks the check failed and stops it
func (t *T) FailNow() {
	t.failed = true
	panic(failNow{})
}

// Fail marks the check failed without a message
func (t *T) Fail() {
	t.failed = true
}

// Fatalf records a failure and stops the check
func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Helper is a no-op; it lets testify skip its frames
func (t *T) Helper() {}

// Name returns the check name
func (t *T) Name() string {
	return t.name
}

// Failed reports whether the check has failed so far
func (t *T) Failed() bool {
	return t.failed
}

// Context returns the context the suite runs under
func (t *T) Context() context.Context {
	return t.ctx
}

func (t *T) fail(msg string) {
	t.failed = true
	if msg != "" {
		t.failures = append(t.failures, msg)
	}
}

var testifyLabel = regexp.MustCompile(`(?m)^\s*(Error Trace|Error|Test|Messages):\s*`)

// summarize reduces testify's labelled failure block to "messages: error".
// Stack traces and the test name are dropped.
func summarize(msg string) string {
	locs := testifyLabel.FindAllStringSubmatchIndex(msg, -1)
	if len(locs) == 0 {
		return strings.TrimSpace(msg)
	}
	sections := map[string]string{}
	for i, loc := range locs {
		end := len(msg)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sections[msg[loc[2]:loc[3]]] = tidy(msg[loc[1]:end])
	}
	errText, messages := sections["Error"], sections["Messages"]
	switch {
	case messages == "":
		return errText
	case errText == "":
		return messages
	}
	return messages + ": " + errText
}

// tidy trims the alignment testify puts in front of continuation lines
func tidy(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
