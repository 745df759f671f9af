// Package output renders decoded structures and inventories as text,
// tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: yaml: %w", err)
	}
	return enc.Close()
}

// WriteValue renders a tagged struct such as an inventory. Text and table
// output use the `name` and `color` struct tags.
func WriteValue(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	case FormatTable:
		return writeRowsTable(w, "", NewStructPrinter(w).rows(v))
	case FormatText, "":
		NewStructPrinter(w).Print(v)
		return nil
	}
	return fmt.Errorf("output: unknown format %q", f)
}
