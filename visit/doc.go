// Package visit walks messages in declaration order and computes their encoded size.
//
// A visitor is any value implementing some of the capability interfaces below. The walker
// calls the callbacks a visitor implements and descends on its own where it does not:
//
//   - MessageVisitor, GroupVisitor, EntryVisitor, CompositeVisitor: containers; a visitor
//     implementing one of these decides whether to descend by calling the matching
//     VisitXxxChildren function
//   - PrimitiveVisitor, EnumVisitor, SetVisitor, DataVisitor: leaves
//
// Every callback returns stop; true ends the walk. Children are visited depth-first in
// declaration order: fields, then groups (one OnEntry per entry), then data. Dispatch is
// driven by descriptor kinds only.
//
// SizeBytes trusts the buffer. SizeBytesChecked validates every header, block length,
// count and length against the available bytes before using it, and never triggers the
// check handler, which makes it the entry point for untrusted input.
package visit
