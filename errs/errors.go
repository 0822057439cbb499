// Package errs defines the sentinel errors shared by sbeview packages.
//
// Errors fall into three kinds: bounds violations (an access would leave the buffer),
// structural inconsistencies (the buffer contradicts itself or its descriptor) and usage
// errors (the caller asked for something the layout cannot provide). Use errors.Is with the
// kind sentinels to classify any error returned or reported by this module.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrBoundsViolation indicates an access that would read or write outside the buffer.
	ErrBoundsViolation = errors.New("bounds violation")
	// ErrStructural indicates an encoded length, count or block length that is inconsistent
	// with the buffer or descriptor.
	ErrStructural = errors.New("structural inconsistency")
	// ErrUsage indicates misuse of the API, such as index access on a nested group.
	ErrUsage = errors.New("usage error")
)

// View errors.
var (
	ErrNestedGroupIndex   = fmt.Errorf("%w: index access on nested group", ErrUsage)
	ErrIndexOutOfRange    = fmt.Errorf("%w: index out of range", ErrBoundsViolation)
	ErrInvalidRange       = fmt.Errorf("%w: end before start", ErrUsage)
	ErrInsufficientSlack  = fmt.Errorf("%w: not enough trailing bytes to grow", ErrBoundsViolation)
	ErrLengthOverflow     = fmt.Errorf("%w: length exceeds length type", ErrUsage)
	ErrBlockLengthTooLong = fmt.Errorf("%w: block length exceeds buffer", ErrStructural)
	ErrTruncatedMessage   = fmt.Errorf("%w: message truncated", ErrStructural)
	ErrMultiByteElement   = fmt.Errorf("%w: byte insert into multi-byte element data", ErrUsage)
)

// Descriptor registry errors.
var (
	ErrDuplicateTemplateID = errors.New("duplicate message template id")
	ErrDuplicateName       = errors.New("duplicate message name")
	ErrInvalidName         = errors.New("invalid descriptor name")
	ErrHashCollision       = errors.New("name hash collision")
	ErrUnknownTemplate     = errors.New("unknown message template id")
)

// Capture container errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid capture header size")
	ErrInvalidMagic           = errors.New("invalid capture magic number")
	ErrInvalidIndexEntrySize  = errors.New("invalid index entry size")
	ErrInvalidCompressionType = errors.New("invalid compression type")
	ErrCorruptCapture         = errors.New("corrupt capture container")
	ErrCaptureFull            = errors.New("capture container is full")
	ErrEmptyCapture           = errors.New("capture container has no messages")
	ErrInvalidMessage         = fmt.Errorf("%w: message failed size validation", ErrStructural)
	ErrSchemaMismatch         = errors.New("capture schema mismatch")
	ErrWriterFinished         = fmt.Errorf("%w: capture writer already finished", ErrUsage)
)
