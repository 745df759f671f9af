package output

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// Record is the printable form of one structure.
type Record struct {
	Handle  string   `json:"handle" yaml:"handle"`
	Type    uint8    `json:"type" yaml:"type"`
	Name    string   `json:"name" yaml:"name"`
	Offset  int      `json:"offset" yaml:"offset"`
	Length  int      `json:"length" yaml:"length"`
	Fields  []Field  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Data    string   `json:"data,omitempty" yaml:"data,omitempty"`
	Strings []string `json:"strings,omitempty" yaml:"strings,omitempty"`
}

type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Headline is the dmidecode style first line of a record.
func (r Record) Headline() string {
	return fmt.Sprintf("Handle %s, DMI type %d, %d bytes", r.Handle, r.Type, r.Length)
}

type fielder interface {
	Present() bool
	Interface() any
}

var fielderType = reflect.TypeFor[fielder]()

// Describe lists every present typed field of s. Fields are found by
// reflection over the exported methods that take no arguments and return
// a Field; they are listed in method name order. Structures without
// typed fields get a hex dump of their formatted area instead.
func Describe(s smbios.Structure) Record {
	rec := Record{
		Handle:  s.Handle().String(),
		Type:    uint8(s.Type()),
		Name:    s.Type().String(),
		Offset:  s.Span().Offset,
		Length:  s.Length(),
		Strings: s.Strings().Strings(),
	}

	rv := reflect.ValueOf(s)
	rt := rv.Type()
	for i := range rt.NumMethod() {
		m := rt.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || !m.Type.Out(0).Implements(fielderType) {
			continue
		}

		f := rv.Method(i).Call(nil)[0].Interface().(fielder)
		if !f.Present() {
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: label(m.Name), Value: normalize(f.Interface())})
	}

	if len(rec.Fields) == 0 {
		rec.Data = hexDump(s.Span().Formatted())
	}
	return rec
}

// DescribeAll describes every structure of c in table order.
func DescribeAll(c *smbios.Collection) []Record {
	out := make([]Record, 0, c.Len())
	for _, s := range c.All() {
		out = append(out, Describe(s))
	}
	return out
}

// normalize turns values into something every format prints well.
func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return hexDump(x)
	case smbios.Text:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

func hexDump(b []byte) string {
	parts := make([]string, len(b))
	for i := range b {
		parts[i] = hex.EncodeToString(b[i : i+1])
	}
	return strings.ToUpper(strings.Join(parts, " "))
}

// label splits a Go method name into words, keeping acronyms together:
// "BIOSVersion" becomes "BIOS Version", "L2CacheHandle" "L2 Cache Handle".
func label(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
