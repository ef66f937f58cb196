package replay

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

// FormatOutput formats replay results according to output format
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

// formatTable formats results as a table
func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "STEP\tOP\tLEN\tCAP\tREALLOC\n")
	fmt.Fprintf(tw, "----\t--\t---\t---\t-------\n")
	for _, step := range response.Steps {
		realloc := ""
		if step.Realloc {
			realloc = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", step.Index, step.Op, step.Len, step.Cap, realloc)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nFinal: %v\n", response.Final)
	fmt.Fprintln(w, FormatSummary(response))
	return nil
}

// FormatSummary provides a brief summary for verbose output
func FormatSummary(response *Response) string {
	name := response.Script
	if name == "" {
		name = "script"
	}

	summary := fmt.Sprintf("Replayed %s: %d step", name, len(response.Steps))
	if len(response.Steps) != 1 {
		summary += "s"
	}
	summary += fmt.Sprintf(", len %d, cap %d, %d reallocation", response.Len, response.Cap, response.Reallocations)
	if response.Reallocations != 1 {
		summary += "s"
	}
	summary += fmt.Sprintf(" in %v", response.Elapsed)

	return summary
}
