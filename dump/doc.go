// Package dump renders decoded messages for humans.
//
// The text renderer writes one line per field, indented by nesting level, and colors names
// and values when writing to a terminal. The YAML renderer produces an ordered document
// that keeps fields in declaration order.
//
// Both renderers are built on the visit package and read the buffer through views, so a
// message is rendered without being decoded into an intermediate structure first.
package dump
