// Package testutil builds exercise directories from the shared fixtures
package testutil

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/rubric"
	"github.com/stretchr/testify/require"
)

// FixtureRoot returns the path to the test fixtures directory
func FixtureRoot() string {
	return filepath.Join("..", "fixtures")
}

// Fixture returns the path of an exercise fixture, e.g. Fixture("problem-a", "solution")
func Fixture(problem, variant string) string {
	return filepath.Join(FixtureRoot(), problem, variant)
}

// CopyExercise copies a fixture exercise to root/student/problem and
// returns the new directory
func CopyExercise(t *testing.T, root, student, problem, variant string) string {
	t.Helper()
	src := Fixture(problem, variant)
	dst := filepath.Join(root, student, problem)
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path) //nolint:gosec // G304: Test fixture path - test code only
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o600)
	})
	require.NoError(t, err, "Failed to copy fixture %s/%s", problem, variant)
	return dst
}

// Edit replaces the first occurrence of old in an exercise file
func Edit(t *testing.T, dir, file, old, replacement string) {
	t.Helper()
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path) //nolint:gosec // G304: Test fixture path - test code only
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, old, "%s does not contain the text to edit", file)
	content = strings.Replace(content, old, replacement, 1)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// Grade grades one exercise and returns its report
func Grade(t *testing.T, dir string, cfg grader.Config) *rubric.Report {
	t.Helper()
	results, err := grader.New(cfg).Grade(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Report)
	return results[0].Report
}

// FailedNames lists the qualified names of the failed checks
func FailedNames(report *rubric.Report) []string {
	var names []string
	for _, f := range report.Failed() {
		names = append(names, f.FullName())
	}
	return names
}
