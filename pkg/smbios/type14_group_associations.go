package smbios

// GroupAssociations is SMBIOS type 14.
type GroupAssociations struct {
	Parts
}

type GroupItem struct {
	Type   Type
	Handle Handle
}

func (g *GroupAssociations) GroupName() Field[Text] { return g.StringAt(0x04) }

// Items lists the group members, three bytes each after the name.
func (g *GroupAssociations) Items() Field[[]GroupItem] {
	if !g.has(0x04, 1) {
		return Field[[]GroupItem]{}
	}
	n := (g.Length() - 0x05) / 3
	return fieldOf(records(g.Parts, 0x05, n, 3, func(off int) GroupItem {
		return GroupItem{Type: Type(g.span.data[off]), Handle: Handle(g.WordAt(off + 1).value)}
	}))
}
