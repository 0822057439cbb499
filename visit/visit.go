package visit

import (
	"github.com/arloliu/sbeview/view"
)

// Visit walks m with v and reports whether the walk was stopped.
// A MessageVisitor receives the message and a cursor at its root block; other visitors
// have the message's children visited directly.
func Visit(m view.Message, v any) (stopped bool) {
	w := newWalker(v)
	c := m.Cursor()

	return w.message(m, &c)
}

// VisitChildren visits the fields, groups and data of m using c, which must sit at the
// root block as passed to OnMessage.
func VisitChildren(m view.Message, c *view.Cursor, v any) (stopped bool) {
	w := newWalker(v)
	return w.messageChildren(m, c)
}

// VisitGroup visits g as a group member: OnGroup if implemented, the entries otherwise.
// The cursor must sit at the first entry, as left by GroupFrom.
func VisitGroup(g view.Group, c *view.Cursor, v any) (stopped bool) {
	w := newWalker(v)
	return w.group(g, c)
}

// VisitGroupChildren visits every entry of g.
func VisitGroupChildren(g view.Group, c *view.Cursor, v any) (stopped bool) {
	w := newWalker(v)
	return w.groupChildren(g, c)
}

// VisitEntryChildren visits the fields, nested groups and data of e.
func VisitEntryChildren(e view.Entry, c *view.Cursor, v any) (stopped bool) {
	w := newWalker(v)
	return w.entryChildren(e, c)
}

// VisitComposite visits comp: OnComposite if implemented, the elements otherwise.
func VisitComposite(comp view.Composite, v any) (stopped bool) {
	w := newWalker(v)
	if w.comp != nil {
		return w.comp.OnComposite(comp, nil)
	}

	return w.compositeChildren(comp)
}

// VisitCompositeChildren visits the elements of comp in declaration order.
func VisitCompositeChildren(comp view.Composite, v any) (stopped bool) {
	w := newWalker(v)
	return w.compositeChildren(comp)
}
