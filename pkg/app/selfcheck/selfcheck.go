// Package selfcheck runs lifecycle scenarios against vectors of instrumented
// elements and reports leaks and misuse.
package selfcheck

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-vector/internal/ubcheck"
	"github.com/deploymenttheory/go-vector/pkg/app"
)

// Request selects scenarios to run. An empty Only runs all of them.
type Request struct {
	Only []string
}

// Response contains the outcome of every scenario run
type Response struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	Results []Result      `json:"results" yaml:"results"`
	Passed  int           `json:"passed" yaml:"passed"`
	Failed  int           `json:"failed" yaml:"failed"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Result is the outcome of a single scenario
type Result struct {
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
	Live   int64  `json:"live" yaml:"live"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Validate validates a selfcheck request
func (r *Request) Validate() error {
	known := names()
	for _, name := range r.Only {
		if !slices.Contains(known, name) {
			return app.NewError(app.ErrCodeInvalidInput,
				fmt.Sprintf("unknown scenario %q (available: %s)", name, strings.Join(known, ", ")), nil)
		}
	}
	return nil
}

func names() []string {
	var out []string
	for _, s := range Scenarios() {
		out = append(out, s.Name)
	}
	return out
}

// Handle runs the selected scenarios in order
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var selected []Scenario
	for _, s := range Scenarios() {
		if len(req.Only) == 0 || slices.Contains(req.Only, s.Name) {
			selected = append(selected, s)
		}
	}

	response := &Response{RunID: uuid.NewString()}
	for i, s := range selected {
		if err := ctx.Err(); err != nil {
			return nil, app.NewError(app.ErrCodeTimeout, fmt.Sprintf("selfcheck interrupted before %s", s.Name), err)
		}

		result := runScenario(s)
		if result.Passed {
			response.Passed++
		} else {
			response.Failed++
			ctx.Logger.Warn("scenario failed",
				zap.String("run_id", response.RunID),
				zap.String("scenario", s.Name),
				zap.String("error", result.Error))
		}
		response.Results = append(response.Results, result)
		ctx.Progress(s.Name, (i+1)*100/len(selected))
	}

	response.Elapsed = time.Since(startTime)
	ctx.Logger.Info("selfcheck finished",
		zap.String("run_id", response.RunID),
		zap.Int("passed", response.Passed),
		zap.Int("failed", response.Failed))

	return response, nil
}

// runScenario runs s from a zeroed live counter. A scenario passes when it
// returns no error, raises no violation and leaves nothing alive.
func runScenario(s Scenario) (result Result) {
	result.Name = s.Name
	ubcheck.Reset()

	defer func() {
		result.Live = ubcheck.Live()
		if r := recover(); r != nil {
			var violation *ubcheck.Violation
			if err, ok := r.(error); ok && errors.As(err, &violation) {
				result.Error = violation.Error()
			} else {
				result.Error = fmt.Sprintf("panic: %v", r)
			}
			return
		}
		if result.Error == "" && result.Live != 0 {
			result.Error = fmt.Sprintf("%d value(s) still alive", result.Live)
		}
		result.Passed = result.Error == ""
	}()

	if err := s.Run(); err != nil {
		result.Error = err.Error()
	}
	return result
}

// FormatOutput formats selfcheck results according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case app.FormatJSON:
		return app.EncodeJSON(w, response)
	case app.FormatYAML:
		return app.EncodeYAML(w, response)
	case app.FormatTable:
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "SCENARIO\tRESULT\tLIVE\tERROR\n")
	fmt.Fprintf(tw, "--------\t------\t----\t-----\n")
	for _, r := range response.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Name, status, r.Live, r.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d passed, %d failed in %v\n", response.Passed, response.Failed, response.Elapsed)
	return nil
}
