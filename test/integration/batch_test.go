package integration_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/cli"
	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/brianc020801/INFO-340-Problem-4/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// submissions lays out a class: one student with both solutions, one with
// the problem-a starter
func submissions(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.CopyExercise(t, root, "alice", "problem-a", "solution")
	testutil.CopyExercise(t, root, "alice", "problem-b", "solution")
	testutil.CopyExercise(t, root, "bob", "problem-a", "starter")
	return root
}

func TestGradeSubmissions(t *testing.T) {
	root := submissions(t)

	dirs, err := grader.Expand([]string{filepath.Join(root, "*", "problem-*")})
	require.NoError(t, err)
	require.Len(t, dirs, 3)

	results, err := grader.New(grader.Config{Jobs: 2}).Grade(context.Background(), dirs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Passed(), "alice problem-a")
	assert.Equal(t, "problem-a", results[0].Problem)
	assert.True(t, results[1].Passed(), "alice problem-b")
	assert.Equal(t, "problem-b", results[1].Problem)
	assert.False(t, results[2].Passed(), "bob problem-a")
	assert.False(t, grader.AllPassed(results))

	var out bytes.Buffer
	require.NoError(t, report.Render(&out, results, report.FormatTable, report.Options{}))
	for _, student := range []string{"alice", "bob"} {
		assert.Contains(t, out.String(), student)
	}
	assert.Contains(t, out.String(), "1. HTML supports responsive design")
}

func TestCommandLine(t *testing.T) {
	root := submissions(t)
	pattern := filepath.Join(root, "*", "problem-*")

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"grade", "--no-color", "-o", "yaml", "-j", "3", pattern}, &stdout, &stderr)
	assert.Equal(t, cli.ExitFailure, code, stderr.String())

	var views []struct {
		Dir    string `yaml:"dir"`
		Passed bool   `yaml:"passed"`
		Checks struct {
			Passed int `yaml:"passed"`
			Failed int `yaml:"failed"`
		} `yaml:"checks"`
	}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &views))
	require.Len(t, views, 3)
	for _, v := range views {
		bob := strings.Contains(v.Dir, filepath.Join("bob", "problem-a"))
		assert.Equal(t, !bob, v.Passed, v.Dir)
		if bob {
			assert.Positive(t, v.Checks.Failed)
		}
	}

	// alice alone passes
	stdout.Reset()
	stderr.Reset()
	code = cli.Run(context.Background(), []string{"grade", "--no-color", filepath.Join(root, "alice", "*")}, &stdout, &stderr)
	assert.Equal(t, cli.ExitOK, code, stdout.String()+stderr.String())
	assert.Contains(t, stdout.String(), "2 passed, 2 total")
}
