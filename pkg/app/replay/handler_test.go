package replay

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

const scenarioScript = `name: scenario
steps:
  - op: push_back
    value: 0
  - op: push_back
    value: 1
  - op: push_back
    value: 2
  - op: push_back
    value: 3
  - op: push_back
    value: 4
  - op: pop_back
  - op: clear
`

func TestHandle_Scenario(t *testing.T) {
	ctx := app.NewContext()

	resp, err := Handle(ctx, &Request{Source: []byte(scenarioScript), MaxSteps: 100})
	require.NoError(t, err)

	assert.Equal(t, "scenario", resp.Script)
	assert.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Steps, 7)

	wantLen := []int{1, 2, 3, 4, 5, 4, 0}
	wantCap := []int{1, 2, 4, 4, 8, 8, 8}
	for i, step := range resp.Steps {
		assert.Equal(t, wantLen[i], step.Len, "len after step %d", i)
		assert.Equal(t, wantCap[i], step.Cap, "cap after step %d", i)
	}
	assert.Equal(t, 4, resp.Reallocations)
	assert.Equal(t, []int{}, resp.Final)
	assert.Equal(t, 8, resp.Cap)
}

func TestHandle_Positional(t *testing.T) {
	script := `{"name": "erase", "initial": [1, 2, 3, 4, 5, 6], "steps": [
        {"op": "erase_range", "pos": 1, "to": 3},
        {"op": "insert", "pos": 0, "value": 9},
        {"op": "insert_n", "pos": 5, "count": 2, "value": 7},
        {"op": "insert_values", "pos": 1, "values": [8, 8]},
        {"op": "erase", "pos": 0},
        {"op": "emplace_back", "value": 5},
        {"op": "resize", "count": 9},
        {"op": "shrink_to_fit"},
        {"op": "reserve", "count": 32}
  ]}`

	resp, err := Handle(app.NewContext(), &Request{Source: []byte(script), MaxSteps: 100})
	require.NoError(t, err)

	assert.Equal(t, []int{8, 8, 1, 4, 5, 6, 7, 7, 5}, resp.Final)
	assert.Equal(t, 32, resp.Cap)
	assert.False(t, resp.Steps[0].Realloc, "erase keeps storage")
	assert.True(t, resp.Steps[7].Realloc, "shrink_to_fit reallocates")
	assert.Equal(t, 9, resp.Steps[7].Cap)
	assert.True(t, resp.Steps[8].Realloc)
}

func TestHandle_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioScript), 0o600))

	resp, err := Handle(app.NewContext(), &Request{ScriptPath: path, MaxSteps: 100})
	require.NoError(t, err)
	assert.Len(t, resp.Steps, 7)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		errCode string
		errMsg  string
	}{
		{
			name:    "missing script",
			request: Request{MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "max steps zero",
			request: Request{Source: []byte(scenarioScript)},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "unreadable file",
			request: Request{ScriptPath: "/nonexistent/script.yaml", MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "unknown field",
			request: Request{Source: []byte("steps:\n  - op: clear\n    bogus: 1\n"), MaxSteps: 10},
			errCode: app.ErrCodeScriptParse,
		},
		{
			name:    "no steps",
			request: Request{Source: []byte("name: empty\n"), MaxSteps: 10},
			errCode: app.ErrCodeScriptParse,
		},
		{
			name:    "too many steps",
			request: Request{Source: []byte(scenarioScript), MaxSteps: 3},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "pop on empty",
			request: Request{Source: []byte("steps:\n  - op: pop_back\n"), MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
			errMsg:  "step 0: pop_back on empty vector",
		},
		{
			name:    "erase out of range",
			request: Request{Source: []byte("initial: [1]\nsteps:\n  - op: erase\n    pos: 1\n"), MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "insert past end",
			request: Request{Source: []byte("steps:\n  - op: insert\n    pos: 2\n"), MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "unknown op",
			request: Request{Source: []byte("steps:\n  - op: sort\n"), MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
			errMsg:  `step 0: unknown operation "sort"`,
		},
		{
			name:    "reserve too large",
			request: Request{Source: []byte("steps:\n  - op: reserve\n    count: 99999999999\n"), MaxSteps: 10},
			errCode: app.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Handle(app.NewContext(), &tt.request)
			require.Error(t, err)
			assert.Equal(t, tt.errCode, app.ErrorCode(err))
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, err.Error())
			}
		})
	}
}

func TestHandle_Cancelled(t *testing.T) {
	ctx := app.NewContext()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	ctx.Context = cancelled

	_, err := Handle(ctx, &Request{Source: []byte(scenarioScript), MaxSteps: 100})
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeTimeout, app.ErrorCode(err))
}

func TestHandle_Progress(t *testing.T) {
	ctx := app.NewContext()
	var last int
	ctx.SetProgress(func(_ string, percent int) { last = percent })

	_, err := Handle(ctx, &Request{Source: []byte(scenarioScript), MaxSteps: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, last)
}

func TestFormatOutput(t *testing.T) {
	resp, err := Handle(app.NewContext(), &Request{Source: []byte(scenarioScript), MaxSteps: 100})
	require.NoError(t, err)

	tests := []struct {
		name     string
		format   string
		wantErr  bool
		validate func(*testing.T, string)
	}{
		{
			name:   "table format",
			format: app.FormatTable,
			validate: func(t *testing.T, output string) {
				assert.Contains(t, output, "STEP")
				assert.Contains(t, output, "push_back")
				assert.Contains(t, output, "Replayed scenario: 7 steps, len 0, cap 8, 4 reallocations")
			},
		},
		{
			name:   "json format",
			format: app.FormatJSON,
			validate: func(t *testing.T, output string) {
				assert.Contains(t, output, `"run_id"`)
				assert.Contains(t, output, `"reallocations": 4`)
			},
		},
		{
			name:   "yaml format",
			format: app.FormatYAML,
			validate: func(t *testing.T, output string) {
				assert.Contains(t, output, "reallocations: 4")
				assert.True(t, strings.HasPrefix(output, "run_id:"))
			},
		},
		{
			name:    "unsupported format",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := FormatOutput(&buf, resp, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, buf.String())
		})
	}
}

func TestHandle_BundledScripts(t *testing.T) {
	tests := []struct {
		file  string
		final []int
		cap   int
	}{
		{file: "erase.yaml", final: []int{1, 2, 3, 4, 5, 6}, cap: 6},
		{file: "growth.yaml", final: []int{}, cap: 64},
		{file: "insert.json", final: []int{5, 10, 20}, cap: 12},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("..", "..", "..", "scripts", tt.file)
			resp, err := Handle(app.NewContext(), &Request{ScriptPath: path, MaxSteps: 100})
			require.NoError(t, err)
			assert.Equal(t, tt.final, resp.Final)
			assert.Equal(t, tt.cap, resp.Cap)
		})
	}
}
