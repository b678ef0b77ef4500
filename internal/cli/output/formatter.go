package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Result is the outcome of one request.
type Result struct {
	Command  string `json:"command" yaml:"command"`
	Key      string `json:"key,omitempty" yaml:"key,omitempty"`
	Response string `json:"response" yaml:"response"`
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// ParseFormat parses a format name. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, table, json or yaml)", s)
	}
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter prints the bare response line.
type TextFormatter struct{}

// Format writes a Result's response, or any other value with fmt.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Result:
		_, err := fmt.Fprintln(w, v.Response)
		return err
	case *Result:
		_, err := fmt.Fprintln(w, v.Response)
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
