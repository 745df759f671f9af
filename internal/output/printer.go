package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"
)

const (
	colorDefaultGreen = "DefaultGreen"
	colorTrueGreen    = "trueGreen"
)

// row is one printed line. Section rows carry a label only.
type row struct {
	indent  int
	label   string
	value   string
	color   string
	section bool
}

// StructPrinter prints structs whose fields carry a `name` tag, one
// aligned "label: value" line per non-empty field. Fields without a name
// tag are skipped.
type StructPrinter struct {
	w          io.Writer
	indent     int
	labelWidth int
}

func NewStructPrinter(w io.Writer) *StructPrinter {
	return &StructPrinter{
		w:          w,
		indent:     4,
		labelWidth: 28,
	}
}

func (sp *StructPrinter) Print(v any) {
	for _, r := range sp.rows(v) {
		indentStr := strings.Repeat(" ", r.indent*sp.indent)
		switch {
		case r.section:
			fmt.Fprintf(sp.w, "%s[%s]\n", indentStr, r.label)
		case r.label == "":
			fmt.Fprintf(sp.w, "%s%s\n", indentStr, colorize(r.color, r.value))
		default:
			width := max(sp.labelWidth-r.indent*sp.indent, 0)
			fmt.Fprintf(sp.w, "%s%-*s: %s\n", indentStr, width, r.label, colorize(r.color, r.value))
		}
	}
}

func colorize(rule, value string) string {
	switch rule {
	case colorTrueGreen:
		if value == "true" {
			return color.GreenString(value)
		}
		return color.RedString(value)
	case colorDefaultGreen:
		if value != "" {
			return color.GreenString(value)
		}
	}
	return value
}

func (sp *StructPrinter) rows(v any) []row {
	var out []row
	sp.collect(reflect.ValueOf(v), 0, &out)
	return out
}

func (sp *StructPrinter) collect(v reflect.Value, indent int, out *[]row) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		value := v.Field(i)

		name := field.Tag.Get("name")
		if name == "" || !field.IsExported() {
			continue
		}
		colorRule := field.Tag.Get("color")

		switch value.Kind() {
		case reflect.Struct:
			*out = append(*out, row{indent: indent, label: name, section: true})
			sp.collect(value, indent+1, out)
		case reflect.Slice, reflect.Array:
			if value.Len() == 0 {
				continue
			}
			sp.collectSlice(value, name, colorRule, indent, out)
		default:
			if value.IsZero() {
				continue
			}
			*out = append(*out, row{indent: indent, label: name, value: formatValue(value), color: colorRule})
		}
	}
}

// collectSlice prints struct elements as sub-sections headed by their
// first field, and scalar elements one per line under the label.
func (sp *StructPrinter) collectSlice(value reflect.Value, name, colorRule string, indent int, out *[]row) {
	*out = append(*out, row{indent: indent, label: name, section: true})
	for j := range value.Len() {
		elem := value.Index(j)
		if elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		if elem.Kind() != reflect.Struct {
			*out = append(*out, row{indent: indent + 1, value: fmt.Sprint(elem.Interface()), color: colorRule})
			continue
		}

		if elem.NumField() == 0 {
			continue
		}
		first := elem.Type().Field(0)
		*out = append(*out, row{
			indent: indent + 1,
			label:  first.Tag.Get("name"),
			value:  fmt.Sprint(elem.Field(0).Interface()),
			color:  first.Tag.Get("color"),
		})
		sp.collectRemaining(elem, indent+2, out)
	}
}

func (sp *StructPrinter) collectRemaining(v reflect.Value, indent int, out *[]row) {
	t := v.Type()
	for i := 1; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		name := field.Tag.Get("name")
		if name == "" || value.IsZero() {
			continue
		}
		*out = append(*out, row{indent: indent, label: name, value: formatValue(value), color: field.Tag.Get("color")})
	}
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.String {
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = v.Index(i).String()
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v.Interface())
}
