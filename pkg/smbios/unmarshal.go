package smbios

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	tagKey     = "smbios"
	tagSkip    = "skip"
	tagIgnore  = "ignore"
	tagDefault = "default"
)

var ErrUnsupportedField = errors.New("smbios: unsupported field type")

// Unmarshal fills the struct pointed to by v from the formatted area of
// s, one field after another starting at offset 4. Supported field kinds
// are uint8/16/32/64, string (read through a string index) and nested
// structs. Fields are tagged with `smbios:"..."`:
//
//	skip=N      advance N bytes before the field
//	ignore, -   leave the field alone
//	default=X   value used when the structure ends before the field
//
// Decoding stops quietly at the declared structure length; the remaining
// fields get their default or zero value.
func Unmarshal(s Structure, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: need a non-nil struct pointer, got %T", ErrUnsupportedField, v)
	}
	_, err := unmarshalStruct(s, headerLength, rv.Elem())
	return err
}

type fieldTag struct {
	ignore bool
	skip   int
	def    uint64
}

func parseTag(tag string) (fieldTag, error) {
	var ft fieldTag
	if tag == "" {
		return ft, nil
	}
	for part := range strings.SplitSeq(tag, ",") {
		key, val, _ := strings.Cut(part, "=")
		switch key {
		case tagIgnore, "-":
			ft.ignore = true
		case tagSkip:
			n, err := strconv.Atoi(val)
			if err != nil {
				return ft, fmt.Errorf("smbios: bad skip tag %q: %w", part, err)
			}
			ft.skip = n
		case tagDefault:
			d, err := strconv.ParseUint(val, 0, 64)
			if err != nil {
				return ft, fmt.Errorf("smbios: bad default tag %q: %w", part, err)
			}
			ft.def = d
		}
	}
	return ft, nil
}

func unmarshalStruct(s Structure, offset int, sv reflect.Value) (int, error) {
	st := sv.Type()
	for i := range sv.NumField() {
		f := st.Field(i)
		fv := sv.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, err := parseTag(f.Tag.Get(tagKey))
		if err != nil {
			return offset, fmt.Errorf("%s.%s: %w", st.Name(), f.Name, err)
		}
		if tag.ignore {
			continue
		}
		offset += tag.skip

		switch fv.Kind() {
		case reflect.Uint8:
			fv.SetUint(uint64(s.ByteAt(offset).Or(uint8(tag.def))))
			offset++
		case reflect.Uint16:
			fv.SetUint(uint64(s.WordAt(offset).Or(uint16(tag.def))))
			offset += 2
		case reflect.Uint32:
			fv.SetUint(uint64(s.DwordAt(offset).Or(uint32(tag.def))))
			offset += 4
		case reflect.Uint64:
			fv.SetUint(s.QwordAt(offset).Or(tag.def))
			offset += 8
		case reflect.String:
			fv.SetString(s.StringAt(offset).Or(Text{}).String())
			offset++
		case reflect.Struct:
			offset, err = unmarshalStruct(s, offset, fv)
			if err != nil {
				return offset, err
			}
		default:
			return offset, fmt.Errorf("%w: %s.%s is %s", ErrUnsupportedField, st.Name(), f.Name, fv.Kind())
		}
	}
	return offset, nil
}
