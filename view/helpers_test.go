package view_test

import (
	"testing"

	"github.com/arloliu/sbeview/check"
)

// captureViolations installs a recording handler for the duration of the test.
func captureViolations(t *testing.T) *[]*check.Violation {
	t.Helper()

	var got []*check.Violation
	prev := check.SetHandler(func(v *check.Violation) { got = append(got, v) })
	t.Cleanup(func() { check.SetHandler(prev) })

	return &got
}
