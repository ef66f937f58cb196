// Package growth reports how a vector's capacity evolves while appending.
package growth

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/pkg/vector"
)

// MaxCount bounds the number of appends a single request may perform
const MaxCount = 1 << 24

// Request represents a growth trace request
type Request struct {
	Count int
}

// Response lists every capacity change observed
type Response struct {
	Count         int           `json:"count" yaml:"count"`
	FinalCap      int           `json:"final_cap" yaml:"final_cap"`
	Reallocations int           `json:"reallocations" yaml:"reallocations"`
	Steps         []Step        `json:"steps" yaml:"steps"`
	Elapsed       time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Step is a reallocation triggered by the append that made the length AtLen
type Step struct {
	AtLen  int `json:"at_len" yaml:"at_len"`
	OldCap int `json:"old_cap" yaml:"old_cap"`
	NewCap int `json:"new_cap" yaml:"new_cap"`
}

// Validate validates a growth request
func (r *Request) Validate() error {
	if r.Count < 1 || r.Count > MaxCount {
		return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("count must be between 1 and %d", MaxCount), nil)
	}
	return nil
}

// Handle appends Count ints to an empty vector and records each reallocation
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var v vector.Vector[int]
	defer v.Destroy()

	response := &Response{Count: req.Count}
	for i := 0; i < req.Count; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, app.NewError(app.ErrCodeTimeout, fmt.Sprintf("growth interrupted at %d", i), err)
			}
		}

		before := v.Cap()
		v.PushBack(i)
		if v.Cap() != before {
			response.Steps = append(response.Steps, Step{AtLen: v.Len(), OldCap: before, NewCap: v.Cap()})
		}
	}

	response.FinalCap = v.Cap()
	response.Reallocations = len(response.Steps)
	response.Elapsed = time.Since(startTime)

	ctx.Logger.Info("growth traced",
		zap.Int("count", response.Count),
		zap.Int("final_cap", response.FinalCap),
		zap.Int("reallocations", response.Reallocations))

	return response, nil
}

// FormatOutput formats growth results according to output format
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

	fmt.Fprintf(tw, "AT LEN\tOLD CAP\tNEW CAP\n")
	fmt.Fprintf(tw, "------\t-------\t-------\n")
	for _, step := range response.Steps {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", step.AtLen, step.OldCap, step.NewCap)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d appends, final capacity %d, %d reallocations in %v\n",
		response.Count, response.FinalCap, response.Reallocations, response.Elapsed)
	return nil
}
