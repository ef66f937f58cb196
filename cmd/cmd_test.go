package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

// execute runs the root command with args in an isolated directory and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default since cobra keeps parsed
// state between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "", "growth", "5", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"final_cap": 8`)
	assert.Contains(t, out, `"reallocations": 4`)
}

func TestGrowthCommand_ConfigDefaults(t *testing.T) {
	configFile := writeFile(t, "govec.yaml", "output: yaml\ngrowth:\n  count: 3\n")

	out, err := execute(t, "", "growth", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "count: 3")
	assert.Contains(t, out, "final_cap: 4")
}

func TestReplayCommand(t *testing.T) {
	script := writeFile(t, "script.yaml", "name: demo\ninitial: [1, 2, 3]\nsteps:\n  - op: erase\n    pos: 0\n  - op: push_back\n    value: 9\n")

	out, err := execute(t, "", "replay", script)
	require.NoError(t, err)
	assert.Contains(t, out, "Final: [2 3 9]")
	assert.Contains(t, out, "Replayed demo: 2 steps")
}

func TestReplayCommand_Stdin(t *testing.T) {
	out, err := execute(t, `{"steps": [{"op": "push_back", "value": 4}]}`, "replay", "-", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "script: \"\"")
	assert.Contains(t, out, "len: 1")
	assert.Contains(t, out, "- 4")
}

func TestReplayCommand_MaxSteps(t *testing.T) {
	script := writeFile(t, "script.yaml", "steps:\n  - op: clear\n  - op: clear\n  - op: clear\n")

	_, err := execute(t, "", "replay", script, "--max-steps", "2")
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
}

func TestSelfcheckCommand(t *testing.T) {
	out, err := execute(t, "", "selfcheck", "nested", "copy-move")
	require.NoError(t, err)
	assert.Contains(t, out, "2 passed, 0 failed")

	out, err = execute(t, "", "selfcheck", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "insert-erase")

	_, err = execute(t, "", "selfcheck", "bogus")
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
}

func TestConfigShowCommand(t *testing.T) {
	t.Setenv("GOVEC_LOG_LEVEL", "warn")

	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "level: warn")
	assert.Contains(t, out, "max_steps: 10000")
	assert.Contains(t, out, "timeout: 30s")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errCode string
	}{
		{name: "bad output format", args: []string{"growth", "4", "-o", "xml"}, errCode: app.ErrCodeInvalidInput},
		{name: "non-numeric count", args: []string{"growth", "many"}, errCode: app.ErrCodeInvalidInput},
		{name: "zero count", args: []string{"growth", "0"}, errCode: app.ErrCodeInvalidInput},
		{name: "missing config", args: []string{"growth", "--config", "/nonexistent/govec.yaml"}, errCode: app.ErrCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.errCode, app.ErrorCode(err))
		})
	}
}
