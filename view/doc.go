// Package view provides zero-copy views over SBE encoded buffers.
//
// A view is a small value (buffer, offset, byte order engine) that reads and writes the
// caller's bytes in place. Views never allocate and never copy the buffer; they are cheap
// to pass by value. Structure is supplied by descriptors from the traits package, usually
// through typed wrappers emitted by a schema compiler.
//
// # Views
//
//   - Bytes: a position inside a buffer, bounded by the buffer end
//   - Cursor: a moving position for single-pass traversal
//   - Required, Optional, Enum, Set, Primitive: scalar fields
//   - StaticArray, CharArray: fixed-length arrays
//   - Data: length-prefixed variable data
//   - Composite, Header, Dimension: fixed multi-field types
//   - Message, Group, Entry: the variable structure of a message
//
// # Access Patterns
//
// Random access locates each member from the start of its level:
//
//	msg := view.NewMessage(buf, orderTraits)
//	fills := msg.Group(0)
//	for i := range fills.Len() {
//		px := view.Get[int64](fills.Entry(i).Field(0), 0)
//	}
//
// Entry(i) is O(1) only for flat groups (entries without nested groups or data). For
// nested groups use All, or walk the message once with a Cursor:
//
//	c := msg.Cursor()
//	g := msg.GroupFrom(&c, 0)
//	for _, e := range g.Range(&c) {
//		...
//	}
//	size := msg.SizeBytesAt(c)
//
// # Bounds
//
// Every access is checked against the buffer end. A failed check is reported to the
// check package handler, which panics by default. When a permissive handler returns, the
// accessor performs no read or write and yields a zero value.
//
// # Mutation
//
// Resizing a group or data field moves every byte after it toward or away from the buffer
// end. Growing needs that many unused bytes at the end of the buffer. Views and cursors
// pointing at or after the mutation point are stale afterwards and must be re-derived.
//
// # Thread Safety
//
// Views hold no state of their own. Concurrent readers are safe; a buffer must have at
// most one writer and no concurrent readers while it is being written.
package view
