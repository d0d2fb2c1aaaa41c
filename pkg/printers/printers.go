// Package printers renders goal rows for the terminal and for machines.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"tableflip.dev/goals/pkg/app"
)

// Format selects how rows are rendered.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatPretty), string(FormatTable), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat maps a flag value to a Format. The empty string is pretty.
func ParseFormat(v string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(v))); f {
	case "":
		return FormatPretty, nil
	case FormatPretty, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, want one of %s", v, strings.Join(Formats(), ", "))
	}
}

// Goals writes rows to w in the requested format.
func Goals(w io.Writer, f Format, rows []app.Row) error {
	if rows == nil {
		rows = []app.Row{}
	}
	switch f {
	case FormatJSON:
		return JSON(w, rows)
	case FormatYAML:
		return YAML(w, rows)
	case FormatTable:
		return Table(w, rows)
	default:
		pp := PrettyPrint{Out: w}
		pp.Title("Goals", len(rows))
		pp.Goals(rows...)
		return nil
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	data, err := yaml.MarshalWithOptions(v,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
