package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrNestedGroupIndex, ErrUsage},
		{ErrInvalidRange, ErrUsage},
		{ErrLengthOverflow, ErrUsage},
		{ErrMultiByteElement, ErrUsage},
		{ErrIndexOutOfRange, ErrBoundsViolation},
		{ErrInsufficientSlack, ErrBoundsViolation},
		{ErrBlockLengthTooLong, ErrStructural},
		{ErrTruncatedMessage, ErrStructural},
		{ErrInvalidMessage, ErrStructural},
		{ErrWriterFinished, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)

			wrapped := fmt.Errorf("decode order: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.kind)
		})
	}

	require.False(t, errors.Is(ErrUsage, ErrStructural))
}
