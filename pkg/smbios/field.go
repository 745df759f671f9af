package smbios

import (
	"encoding/json"
	"fmt"
)

// Field is the result of a typed accessor. A field is absent when the
// structure is too short to hold it or when the platform version predates
// it; absence is never an error.
type Field[T any] struct {
	value   T
	present bool
}

func fieldOf[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

func (f Field[T]) Get() (T, bool) {
	return f.value, f.present
}

func (f Field[T]) Present() bool {
	return f.present
}

// Or returns the value, or def when the field is absent.
func (f Field[T]) Or(def T) T {
	if !f.present {
		return def
	}
	return f.value
}

// Interface returns the value as any, or nil when the field is absent.
func (f Field[T]) Interface() any {
	if !f.present {
		return nil
	}
	return f.value
}

func (f Field[T]) String() string {
	if !f.present {
		return "<absent>"
	}
	return fmt.Sprint(f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f Field[T]) MarshalYAML() (any, error) {
	if !f.present {
		return nil, nil
	}
	return f.value, nil
}

// convert maps a present value through fn and keeps absence as is.
func convert[T, U any](f Field[T], fn func(T) U) Field[U] {
	if !f.present {
		return Field[U]{}
	}
	return fieldOf(fn(f.value))
}

// since hides f when the platform version is known and older than
// major.minor. Without a version only the declared length decides.
func since[T any](p Parts, major, minor uint8, f Field[T]) Field[T] {
	if p.version != nil && !p.version.AtLeast(major, minor) {
		return Field[T]{}
	}
	return f
}

// cast converts a present integer field to a named integer type.
func cast[U, T unsigned](f Field[T]) Field[U] {
	return convert(f, func(v T) U { return U(v) })
}
