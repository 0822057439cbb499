package visit

import (
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
)

// MessageVisitor is called for the message being visited.
type MessageVisitor interface {
	OnMessage(m view.Message, c *view.Cursor) (stop bool)
}

// GroupVisitor is called for each group. The cursor sits at the first entry.
type GroupVisitor interface {
	OnGroup(g view.Group, c *view.Cursor) (stop bool)
}

// EntryVisitor is called for each group entry.
type EntryVisitor interface {
	OnEntry(e view.Entry, c *view.Cursor) (stop bool)
}

// CompositeVisitor is called for each composite field.
type CompositeVisitor interface {
	OnComposite(v view.Composite, f *traits.Field) (stop bool)
}

// EnumVisitor is called for each enum field.
type EnumVisitor interface {
	OnEnum(e view.Enum, f *traits.Field) (stop bool)
}

// SetVisitor is called for each set field.
type SetVisitor interface {
	OnSet(s view.Set, f *traits.Field) (stop bool)
}

// PrimitiveVisitor is called for each primitive field or fixed array.
type PrimitiveVisitor interface {
	OnPrimitive(p view.Primitive, f *traits.Field) (stop bool)
}

// DataVisitor is called for each data field.
type DataVisitor interface {
	OnData(d view.Data) (stop bool)
}

// walker holds the capabilities of one visitor, resolved once per walk.
type walker struct {
	msg  MessageVisitor
	grp  GroupVisitor
	ent  EntryVisitor
	comp CompositeVisitor
	enum EnumVisitor
	set  SetVisitor
	prim PrimitiveVisitor
	data DataVisitor
}

func newWalker(v any) walker {
	var w walker
	w.msg, _ = v.(MessageVisitor)
	w.grp, _ = v.(GroupVisitor)
	w.ent, _ = v.(EntryVisitor)
	w.comp, _ = v.(CompositeVisitor)
	w.enum, _ = v.(EnumVisitor)
	w.set, _ = v.(SetVisitor)
	w.prim, _ = v.(PrimitiveVisitor)
	w.data, _ = v.(DataVisitor)

	return w
}

// level is implemented by view.Message and view.Entry.
type level interface {
	Field(i int) view.Bytes
	GroupFrom(c *view.Cursor, i int) view.Group
	DataFrom(c *view.Cursor, i int) view.Data
}

func (w *walker) message(m view.Message, c *view.Cursor) bool {
	if w.msg != nil {
		return w.msg.OnMessage(m, c)
	}

	return w.messageChildren(m, c)
}

func (w *walker) messageChildren(m view.Message, c *view.Cursor) bool {
	t := m.Traits()
	return w.levelChildren(m, m.BlockLength(), t.Fields, t.Groups, t.Data, c)
}

func (w *walker) levelChildren(lv level, blockLength int, fields []*traits.Field, groups []*traits.Group, data []*traits.Data, c *view.Cursor) bool {
	for i, f := range fields {
		// Fields past the encoded block were added after the sender's schema version.
		if f.End() > blockLength {
			continue
		}
		if w.field(lv.Field(i), f) {
			return true
		}
	}
	for i := range groups {
		if w.group(lv.GroupFrom(c, i), c) {
			return true
		}
	}
	for i := range data {
		d := lv.DataFrom(c, i)
		if w.data != nil && w.data.OnData(d) {
			return true
		}
	}

	return false
}

func (w *walker) field(b view.Bytes, f *traits.Field) bool {
	switch f.Value.Kind() {
	case traits.KindType:
		if w.prim != nil {
			return w.prim.OnPrimitive(view.NewPrimitive(b, f.Value.(*traits.Type)), f)
		}
	case traits.KindEnum:
		if w.enum != nil {
			return w.enum.OnEnum(view.NewEnum(b, f.Value.(*traits.Enum)), f)
		}
	case traits.KindSet:
		if w.set != nil {
			return w.set.OnSet(view.NewSet(b, f.Value.(*traits.Set)), f)
		}
	case traits.KindComposite:
		comp := view.NewComposite(b, f.Value.(*traits.Composite))
		if w.comp != nil {
			return w.comp.OnComposite(comp, f)
		}

		return w.compositeChildren(comp)
	}

	return false
}

func (w *walker) compositeChildren(comp view.Composite) bool {
	for i, f := range comp.Traits().Elements {
		if w.field(comp.Field(i), f) {
			return true
		}
	}

	return false
}

func (w *walker) group(g view.Group, c *view.Cursor) bool {
	if w.grp == nil {
		return w.groupChildren(g, c)
	}

	first := c.Pos()
	if w.grp.OnGroup(g, c) {
		return true
	}
	// The visitor did not descend; skip the entries so later members line up.
	if c.Pos() == first {
		c.Advance(g.SizeBytes() - g.Dimension().SizeBytes())
	}

	return false
}

func (w *walker) groupChildren(g view.Group, c *view.Cursor) bool {
	for _, e := range g.Range(c) {
		if w.entry(e, c) {
			return true
		}
	}

	return false
}

func (w *walker) entry(e view.Entry, c *view.Cursor) bool {
	if w.ent != nil {
		return w.ent.OnEntry(e, c)
	}

	return w.entryChildren(e, c)
}

func (w *walker) entryChildren(e view.Entry, c *view.Cursor) bool {
	t := e.Traits()
	return w.levelChildren(e, e.BlockLength(), t.Fields, t.Groups, t.Data, c)
}
