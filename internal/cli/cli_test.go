package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/cli"
	"github.com/brianc020801/INFO-340-Problem-4/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var packageDir = func() string {
	dir, err := filepath.Abs(".")
	if err != nil {
		panic(err)
	}
	return dir
}()

// fixture paths are absolute so tests may change directory
func fixture(parts ...string) string {
	return filepath.Join(append([]string{packageDir, "..", "..", "test", "fixtures"}, parts...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	return runContext(t, context.Background(), args...)
}

func runContext(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(ctx, append([]string{"--no-color"}, args...), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestGradeSolution(t *testing.T) {
	res := run(t, "grade", fixture("problem-a", "solution"))
	assert.Equal(t, cli.ExitOK, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "PASS")
	assert.Contains(t, res.stdout, "18 passed, 18 total")
	assert.NotContains(t, res.stderr, "Error:")
}

func TestGradeStarterFails(t *testing.T) {
	res := run(t, "grade", fixture("problem-b", "starter"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stdout, "FAIL")
	assert.NotContains(t, res.stderr, "Error:", "the report already explains the failure")
}

func TestGradeJSONGlob(t *testing.T) {
	res := run(t, "grade", "-o", "json", fixture("*", "solution"))
	require.Equal(t, cli.ExitOK, res.code, res.stderr)

	var views []struct {
		Dir     string `json:"dir"`
		Problem string `json:"problem"`
		Passed  bool   `json:"passed"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "problem-a", views[0].Problem)
	assert.Equal(t, "problem-b", views[1].Problem)
	for _, v := range views {
		assert.True(t, v.Passed, v.Dir)
	}
}

func TestGradeForcedProblem(t *testing.T) {
	// problem-b's rubric against problem-a's page
	res := run(t, "grade", "-p", "problem-b", fixture("problem-a", "solution"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stdout, "(problem-b)")
}

func TestGradeMissingExercise(t *testing.T) {
	res := run(t, "grade", "-p", "problem-a", fixture("problem-a", "missing"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stdout, "missing exercise file")
}

func TestGradeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runContext(t, ctx, "grade", fixture("problem-a", "solution"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stderr, "context canceled")
}

func TestLintFile(t *testing.T) {
	res := run(t, "lint", fixture("problem-a", "starter", "css", "style.css"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stdout, "property-no-unknown")
	assert.Contains(t, res.stdout, "color-no-invalid-hex")
	assert.Contains(t, res.stdout, "errors")

	res = run(t, "lint", fixture("problem-a", "solution", "css", "style.css"))
	assert.Equal(t, cli.ExitOK, res.code, res.stdout)
	assert.Contains(t, res.stdout, "0 errors")
}

func TestLintDirectoryWithProblem(t *testing.T) {
	res := run(t, "lint", "-p", "problem-b", "-o", "json", fixture("problem-b", "solution"))
	require.Equal(t, cli.ExitOK, res.code, res.stdout+res.stderr)
	var diags []struct {
		Severity string `json:"severity"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &diags))
	for _, d := range diags {
		assert.NotEqual(t, "error", d.Severity)
	}

	res = run(t, "lint", "-p", "problem-b", fixture("problem-b", "starter"))
	assert.Equal(t, cli.ExitFailure, res.code)
	assert.Contains(t, res.stdout, "attr-bans")
}

func TestLintConfiguredOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "gradecheck.yaml"), "csslint:\n  property-no-unknown: false\n  color-no-invalid-hex: false\n")
	t.Chdir(dir)

	res := run(t, "lint", fixture("problem-a", "starter", "css", "style.css"))
	assert.Equal(t, cli.ExitOK, res.code, res.stdout)
	assert.Contains(t, res.stdout, "0 errors")
}

func TestRubric(t *testing.T) {
	res := run(t, "rubric", "problem-b", "-o", "yaml")
	require.Equal(t, cli.ExitOK, res.code, res.stderr)

	var outlines []struct {
		Suite  string `yaml:"suite"`
		Groups []struct {
			Title  string   `yaml:"title"`
			Checks []string `yaml:"checks"`
		} `yaml:"groups"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &outlines))
	require.Len(t, outlines, 1)
	assert.Equal(t, "problem-b", outlines[0].Suite)
	assert.Len(t, outlines[0].Groups, 7)

	res = run(t, "rubric")
	require.Equal(t, cli.ExitOK, res.code)
	assert.Contains(t, res.stdout, "problem-a")
	assert.Contains(t, res.stdout, "problem-b")
}

func TestVersion(t *testing.T) {
	res := run(t, "version", "-o", "json")
	require.Equal(t, cli.ExitOK, res.code)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["goVersion"])

	res = run(t, "version")
	assert.Contains(t, res.stdout, "gradecheck ")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"grade", "--bogus"}},
		{"unknown command", []string{"bogus"}},
		{"too many args", []string{"rubric", "problem-a", "problem-b"}},
		{"unknown problem", []string{"rubric", "problem-z"}},
		{"bad format", []string{"version", "-o", "xml"}},
		{"bad jobs", []string{"grade", "-j", "0"}},
		{"lint without files", []string{"lint"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			assert.Equal(t, cli.ExitUsage, res.code, res.stderr)
			assert.Contains(t, res.stderr, "Error:")
			assert.Contains(t, res.stderr, "--help")
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(cli.ErrFailed))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(errors.New("read failed")))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(fmt.Errorf("loading: %w", config.ErrInvalid)))
}
