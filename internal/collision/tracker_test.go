package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("NewOrder", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("CancelOrder", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"NewOrder", "CancelOrder"}, tracker.Names())
}

func TestTracker_Track_Errors(t *testing.T) {
	tracker := NewTracker()

	require.ErrorIs(t, tracker.Track("", 1), errs.ErrInvalidName)

	require.NoError(t, tracker.Track("NewOrder", 1))
	require.ErrorIs(t, tracker.Track("NewOrder", 1), errs.ErrDuplicateName)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("NewOrder", 0x42))
	require.NoError(t, tracker.Track("Trade", 0x42))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1))
	require.NoError(t, tracker.Track("b", 1))
	require.True(t, tracker.HasCollision())

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("a", 1))
}
