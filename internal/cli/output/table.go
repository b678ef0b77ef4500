package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table is a simple column-aligned table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// TableFormatter formats results as a table.
type TableFormatter struct{}

// Format renders a Result (or a slice of them) as a table. Other values
// fall back to text output.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	var results []Result
	switch v := data.(type) {
	case *Table:
		return v.Render(w)
	case Result:
		results = []Result{v}
	case *Result:
		results = []Result{*v}
	case []Result:
		results = v
	default:
		return (&TextFormatter{}).Format(w, data)
	}

	t := &Table{}
	t.SetHeaders("COMMAND", "KEY", "RESPONSE")
	for _, r := range results {
		t.AddRow(r.Command, r.Key, quoteEmpty(r.Response))
	}
	return t.Render(w)
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
