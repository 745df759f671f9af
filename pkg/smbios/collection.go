package smbios

import (
	"iter"
	"slices"
)

// Collection is the ordered result of decoding a structure table. It is
// built once and never modified.
type Collection struct {
	structures []Structure
	byHandle   map[Handle]int
	byType     map[Type][]int
	version    *Version
}

// Decode walks buf and dispatches every structure. version is optional and
// only used to gate fields added in later SMBIOS releases.
//
// The returned collection is never nil. When the walk fails it holds every
// structure decoded before the failure and the error is returned with it.
func Decode(buf []byte, version *Version) (*Collection, error) {
	c := &Collection{
		byHandle: make(map[Handle]int),
		byType:   make(map[Type][]int),
	}
	if version != nil {
		v := *version
		c.version = &v
	}

	for s, err := range NewWalker(buf).Spans() {
		if err != nil {
			return c, err
		}
		c.add(Dispatch(s, c.version))
	}

	return c, nil
}

func (c *Collection) add(s Structure) {
	i := len(c.structures)
	c.structures = append(c.structures, s)
	if _, dup := c.byHandle[s.Handle()]; !dup {
		c.byHandle[s.Handle()] = i
	}
	c.byType[s.Type()] = append(c.byType[s.Type()], i)
}

func (c *Collection) Len() int {
	return len(c.structures)
}

// All yields the structures in table order.
func (c *Collection) All() iter.Seq2[int, Structure] {
	return slices.All(c.structures)
}

func (c *Collection) Structures() []Structure {
	return slices.Clone(c.structures)
}

// ByHandle returns the first structure carrying handle h.
func (c *Collection) ByHandle(h Handle) (Structure, bool) {
	i, ok := c.byHandle[h]
	if !ok {
		return nil, false
	}
	return c.structures[i], true
}

// ByType returns the structures of type t in table order.
func (c *Collection) ByType(t Type) []Structure {
	idx := c.byType[t]
	out := make([]Structure, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.structures[i])
	}
	return out
}

func (c *Collection) Version() (Version, bool) {
	if c.version == nil {
		return Version{}, false
	}
	return *c.version, true
}

// Find returns every structure of kind T in table order.
func Find[T Structure](c *Collection) []T {
	var out []T
	for _, s := range c.structures {
		if v, ok := s.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first structure of kind T.
func First[T Structure](c *Collection) (T, bool) {
	for _, s := range c.structures {
		if v, ok := s.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
