package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteRecords renders structures. Text output follows the layout of
// dmidecode: a headline, the structure name, then one tab-indented line
// per field.
func WriteRecords(w io.Writer, f Format, records []Record) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	case FormatTable:
		for _, r := range records {
			if err := writeRowsTable(w, r.Headline()+"\n"+r.Name, recordRows(r)); err != nil {
				return err
			}
		}
		return nil
	case FormatText, "":
		for _, r := range records {
			writeRecordText(w, r)
		}
		return nil
	}
	return fmt.Errorf("output: unknown format %q", f)
}

// WriteSummary renders one line per structure.
func WriteSummary(w io.Writer, f Format, records []Record) error {
	type summary struct {
		Offset  int    `json:"offset" yaml:"offset"`
		Handle  string `json:"handle" yaml:"handle"`
		Type    uint8  `json:"type" yaml:"type"`
		Name    string `json:"name" yaml:"name"`
		Length  int    `json:"length" yaml:"length"`
		Strings int    `json:"strings" yaml:"strings"`
	}
	list := make([]summary, 0, len(records))
	for _, r := range records {
		list = append(list, summary{
			Offset:  r.Offset,
			Handle:  r.Handle,
			Type:    r.Type,
			Name:    r.Name,
			Length:  r.Length,
			Strings: len(r.Strings),
		})
	}

	switch f {
	case FormatJSON:
		return writeJSON(w, list)
	case FormatYAML:
		return writeYAML(w, list)
	case FormatTable, FormatText, "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Offset", "Handle", "Type", "Name", "Length", "Strings"})
		for _, s := range list {
			t.AppendRow(table.Row{fmt.Sprintf("0x%04X", s.Offset), s.Handle, s.Type, s.Name, s.Length, s.Strings})
		}
		if f == FormatTable {
			t.SetStyle(table.StyleLight)
		} else {
			t.SetStyle(table.StyleDefault)
			t.Style().Options = table.OptionsNoBordersAndSeparators
		}
		t.Render()
		return nil
	}
	return fmt.Errorf("output: unknown format %q", f)
}

func writeRecordText(w io.Writer, r Record) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(r.Headline()))
	fmt.Fprintln(w, r.Name)
	for _, f := range r.Fields {
		writeFieldText(w, f.Name, f.Value)
	}
	if r.Data != "" {
		fmt.Fprintf(w, "\tHeader and Data:\n\t\t%s\n", r.Data)
	}
	if len(r.Strings) > 0 && len(r.Fields) == 0 {
		fmt.Fprintln(w, "\tStrings:")
		for _, s := range r.Strings {
			fmt.Fprintf(w, "\t\t%s\n", s)
		}
	}
	fmt.Fprintln(w)
}

func writeFieldText(w io.Writer, name string, value any) {
	list, ok := value.([]any)
	if !ok {
		fmt.Fprintf(w, "\t%s: %v\n", name, value)
		return
	}
	if len(list) == 0 {
		fmt.Fprintf(w, "\t%s: None\n", name)
		return
	}
	fmt.Fprintf(w, "\t%s:\n", name)
	for _, v := range list {
		fmt.Fprintf(w, "\t\t%v\n", v)
	}
}

func recordRows(r Record) []row {
	rows := make([]row, 0, len(r.Fields)+1)
	for _, f := range r.Fields {
		value := fmt.Sprint(f.Value)
		if list, ok := f.Value.([]any); ok {
			parts := make([]string, len(list))
			for i, v := range list {
				parts[i] = fmt.Sprint(v)
			}
			value = strings.Join(parts, "\n")
		}
		rows = append(rows, row{label: f.Name, value: value})
	}
	if r.Data != "" {
		rows = append(rows, row{label: "Data", value: r.Data})
	}
	return rows
}

func writeRowsTable(w io.Writer, title string, rows []row) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, r := range rows {
		indent := strings.Repeat("  ", r.indent)
		if r.section {
			t.AppendSeparator()
			t.AppendRow(table.Row{indent + r.label, ""})
			continue
		}
		t.AppendRow(table.Row{indent + r.label, r.value})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
