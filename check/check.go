// Package check holds the process-wide hook that views call when an access would leave
// the buffer or when the API is misused.
//
// By default a violation panics with a *Violation. Applications can install a permissive
// handler (for example LogHandler) that records the violation and returns; the accessor
// that detected it then performs no read or write and yields the zero value. Checking can
// also be disabled entirely for trusted inputs, in which case only the Go runtime bounds
// checks remain.
//
// The handler and the enabled flag are stored atomically. They are meant to be configured
// once at startup, before views are used from multiple goroutines.
package check

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arloliu/sbeview/errs"
)

// Violation describes a rejected access.
type Violation struct {
	Op     string // Op names the accessor that detected the violation.
	Offset int    // Offset is the absolute buffer offset of the access.
	Size   int    // Size is the number of bytes the access needed.
	Limit  int    // Limit is the buffer end bound at the time of the access.
	Err    error  // Err is the error kind, one of the errs sentinels.
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %v (offset=%d size=%d limit=%d)", v.Op, v.Err, v.Offset, v.Size, v.Limit)
}

// Unwrap returns the underlying error kind.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Handler receives violations. A handler that returns lets the caller continue with a
// zero value.
type Handler func(v *Violation)

var (
	handler  atomic.Pointer[Handler]
	disabled atomic.Bool
)

// PanicHandler is the default handler. It panics with the violation.
func PanicHandler(v *Violation) {
	panic(v)
}

// LogHandler returns a permissive handler that logs each violation at error level and
// returns.
func LogHandler(logger zerolog.Logger) Handler {
	return func(v *Violation) {
		logger.Error().
			Str("op", v.Op).
			Int("offset", v.Offset).
			Int("size", v.Size).
			Int("limit", v.Limit).
			Err(v.Err).
			Msg("sbe access rejected")
	}
}

// SetHandler installs h and returns the previously installed handler.
// A nil h restores PanicHandler.
func SetHandler(h Handler) Handler {
	var next *Handler
	if h != nil {
		next = &h
	}

	prev := handler.Swap(next)
	if prev == nil {
		return PanicHandler
	}

	return *prev
}

// SetEnabled turns checking on or off. With checking off Bounds always succeeds and
// out-of-range accesses surface as Go runtime panics instead of violations.
func SetEnabled(on bool) {
	disabled.Store(!on)
}

// Enabled reports whether checking is on.
func Enabled() bool {
	return !disabled.Load()
}

// Bounds reports whether size bytes at off fit below limit. On failure it reports an
// errs.ErrBoundsViolation to the installed handler and returns false.
func Bounds(op string, off, size, limit int) bool {
	if off >= 0 && size >= 0 && off <= limit-size {
		return true
	}
	if disabled.Load() {
		return true
	}
	Report(&Violation{Op: op, Offset: off, Size: size, Limit: limit, Err: errs.ErrBoundsViolation})

	return false
}

// Usage reports an API misuse. It always returns false so callers can write
// `return zero, check.Usage(...)`-style guards.
func Usage(op string, err error) bool {
	Report(&Violation{Op: op, Err: err})

	return false
}

// Report passes v to the installed handler. It does nothing while checking is off.
func Report(v *Violation) {
	if disabled.Load() {
		return
	}
	if h := handler.Load(); h != nil {
		(*h)(v)
		return
	}
	PanicHandler(v)
}

// Recover converts a violation panic into an error stored in *errp. Other panics are
// re-raised. It must be called directly by a deferred statement:
//
//	defer check.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	var v *Violation
	if err, ok := r.(error); ok && errors.As(err, &v) {
		*errp = v
		return
	}

	panic(r)
}
