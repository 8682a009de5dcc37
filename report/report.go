// Package report renders sample results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kbukum/querykit/samples"
)

// Writer prints results to an output stream.
type Writer struct {
	out     io.Writer
	verbose bool
}

// NewWriter creates a Writer. Verbose adds a header with the sample name
// and run ID above each result.
func NewWriter(out io.Writer, verbose bool) *Writer {
	return &Writer{out: out, verbose: verbose}
}

// Result prints the remaining products, then any lines, then the text.
func (w *Writer) Result(res *samples.Result) error {
	var sb strings.Builder
	if w.verbose {
		fmt.Fprintf(&sb, "== %s (run %s) ==\n", res.Sample, res.RunID)
	}
	for _, p := range res.Products {
		sb.WriteString(p.String())
	}
	for _, line := range res.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if res.Text != "" {
		sb.WriteString(res.Text)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w.out, sb.String())
	return err
}

// Results prints each result, separated by a blank line.
func (w *Writer) Results(results []*samples.Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(w.out, "\n"); err != nil {
				return err
			}
		}
		if err := w.Result(res); err != nil {
			return err
		}
	}
	return nil
}

// Samples prints a two-column table of sample names and descriptions.
func (w *Writer) Samples(list []samples.Sample) error {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	return tw.Flush()
}
