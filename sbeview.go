// Package sbeview provides zero-copy views over Simple Binary Encoding (SBE) messages.
//
// Messages are never decoded into Go structs. A view is a position inside a caller-owned
// buffer plus a descriptor from the traits package; every accessor reads or writes the
// buffer directly. Typed accessors emitted by a schema compiler wrap the generic views of
// the view package.
//
// # Basic Usage
//
// Decoding a message whose template is only known from its header:
//
//	m, err := sbeview.Decode(buf, schema)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sbeview.Dump(m))
//
// Writing a message in place, with bounds violations returned as errors:
//
//	err := sbeview.Guard(func() error {
//	    o := NewOrder(buf)
//	    o.FillHeader()
//	    o.Note().AssignString("hedge", format.EOSNone)
//	    return nil
//	})
//
// Recording messages into a compressed capture:
//
//	w, _ := sbeview.NewDefaultCaptureWriter(schema)
//	w.Append(buf)
//	blob, _ := w.Finish()
//	r, _ := sbeview.NewCaptureReader(blob, schema)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the view, visit, dump and
// capture packages. For fine-grained control, use those packages directly.
package sbeview

import (
	"fmt"

	"github.com/arloliu/sbeview/capture"
	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/dump"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
	"github.com/arloliu/sbeview/visit"
)

var defaultCaptureOptions = []capture.Option{
	capture.WithCompression(format.CompressionZstd),
	capture.WithMaxMessages(capture.DefaultMaxMessages),
	capture.WithMaxPayloadSize(capture.DefaultMaxPayloadSize),
}

// Decode identifies the message at the start of buf by its header and validates it
// against the buffer. The returned view is clipped to the message.
//
// Returns:
//   - view.Message: view of the message, sized with SizeBytes
//   - error: errs.ErrUsage for a nil schema, errs.ErrTruncatedMessage, errs.ErrUnknownTemplate
//     or errs.ErrInvalidMessage
func Decode(buf []byte, schema *traits.Schema) (view.Message, error) {
	if schema == nil {
		return view.Message{}, fmt.Errorf("%w: nil schema", errs.ErrUsage)
	}

	ht := schema.HeaderTraits()
	if len(buf) < ht.Size {
		return view.Message{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrTruncatedMessage, len(buf), ht.Size)
	}

	hdr := view.NewHeader(view.NewBytes(buf, schema.Engine()), ht)
	t, ok := schema.MessageByID(hdr.TemplateID())
	if !ok {
		return view.Message{}, fmt.Errorf("%w: %d", errs.ErrUnknownTemplate, hdr.TemplateID())
	}

	size, err := Validate(view.NewMessage(buf, t), len(buf))
	if err != nil {
		return view.Message{}, err
	}

	return view.NewMessage(buf[:size:size], t), nil
}

// Validate checks that m fits within size bytes and returns its encoded size.
func Validate(m view.Message, size int) (int, error) {
	res := visit.SizeBytesChecked(m, size)
	if !res.Valid {
		return res.Size, fmt.Errorf("%w: %s, %d of %d bytes validated", errs.ErrInvalidMessage, m.Traits().Name, res.Size, size)
	}

	return res.Size, nil
}

// Guard runs fn and returns violations raised inside it as errors. It relies on the
// default check.PanicHandler; under a permissive handler violations never reach it.
// Other panics propagate.
func Guard(fn func() error) (err error) {
	defer check.Recover(&err)

	return fn()
}

// Dump renders m as indented text without color.
func Dump(m view.Message) string {
	return dump.Text(m)
}

// NewCaptureWriter creates a capture writer for messages of schema with the given options.
//
// Example:
//
//	w, err := sbeview.NewCaptureWriter(schema,
//	    capture.WithCompression(format.CompressionS2),
//	    capture.WithMaxMessages(1000),
//	)
//	n, err := w.Append(buf)
//	blob, err := w.Finish()
//
// Returns:
//   - *capture.Writer: writer ready to accept messages
//   - error: errs.ErrUsage for a nil schema, or an invalid option
func NewCaptureWriter(schema *traits.Schema, opts ...capture.Option) (*capture.Writer, error) {
	return capture.NewWriter(schema, opts...)
}

// NewDefaultCaptureWriter creates a capture writer with Zstd compression and the default
// limits.
//
// Example:
//
//	w, _ := sbeview.NewDefaultCaptureWriter(schema)
//	for _, msg := range batch {
//	    if _, err := w.Append(msg); err != nil {
//	        log.Printf("skipped: %v", err)
//	    }
//	}
//	blob, _ := w.Finish()
func NewDefaultCaptureWriter(schema *traits.Schema) (*capture.Writer, error) {
	return capture.NewWriter(schema, defaultCaptureOptions...)
}

// NewCaptureReader parses and validates a capture written for schema.
//
// Example:
//
//	r, err := sbeview.NewCaptureReader(blob, schema)
//	if err != nil {
//	    return err
//	}
//	for i, m := range r.All() {
//	    fmt.Println(i, sbeview.Dump(m))
//	}
//
// Returns:
//   - *capture.Reader: reader over the validated messages
//   - error: errs.ErrUsage for a nil schema, or the capture.NewReader errors
func NewCaptureReader(data []byte, schema *traits.Schema) (*capture.Reader, error) {
	return capture.NewReader(data, schema)
}
