package smbios

import (
	"bytes"
	"iter"
)

// Text is a string-index field resolved against its structure's string
// table. Index 0 means the field is not set, which is different from a
// set field that resolves to an empty string.
type Text struct {
	Index uint8
	value []byte
}

func (t Text) IsSet() bool {
	return t.Index != 0
}

func (t Text) String() string {
	return string(t.value)
}

// Bytes returns the string without copying it out of the table buffer.
func (t Text) Bytes() []byte {
	return t.value
}

func (t Text) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// StringTable holds the NUL delimited strings that trail a structure's
// formatted area. Entries alias the decoded buffer.
type StringTable struct {
	entries [][]byte
}

// parseStringTable splits the string area, which must end with the first
// NUL of the double-NUL terminator. An area holding only that NUL is empty.
func parseStringTable(area []byte) StringTable {
	if len(area) <= 1 {
		return StringTable{}
	}
	return StringTable{entries: bytes.Split(area[:len(area)-1], []byte{0})}
}

func (st StringTable) Len() int {
	return len(st.entries)
}

// Lookup resolves a 1-based string index. Index 0 yields an unset Text and
// an index past the end of the table yields an empty one.
func (st StringTable) Lookup(index uint8) Text {
	t := Text{Index: index}
	if index == 0 || int(index) > len(st.entries) {
		return t
	}
	t.value = st.entries[index-1]
	return t
}

// All yields every string with its 1-based index.
func (st StringTable) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, e := range st.entries {
			if !yield(i+1, string(e)) {
				return
			}
		}
	}
}

func (st StringTable) Strings() []string {
	out := make([]string, 0, len(st.entries))
	for _, e := range st.entries {
		out = append(out, string(e))
	}
	return out
}
