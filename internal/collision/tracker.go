package collision

import (
	"github.com/arloliu/sbeview/errs"
)

// Tracker tracks descriptor names and detects hash collisions while a schema registry
// is being indexed. Lookups by hashed id are only safe when HasCollision is false;
// otherwise the registry must fall back to exact name comparison.
type Tracker struct {
	names        map[uint64]string // hash → first name seen with that hash
	seen         map[string]struct{}
	order        []string
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
		seen:  make(map[string]struct{}),
		order: make([]string, 0),
	}
}

// Track records name with its hash.
// Returns error if:
//   - The name is empty (ErrInvalidName)
//   - The same name is tracked twice (ErrDuplicateName)
//
// Different names sharing a hash are not errors; the collision flag is set instead.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidName
	}
	if _, dup := t.seen[name]; dup {
		return errs.ErrDuplicateName
	}

	if existing, exists := t.names[hash]; exists && existing != name {
		t.hasCollision = true
	} else {
		t.names[hash] = name
	}

	t.seen[name] = struct{}{}
	t.order = append(t.order, name)

	return nil
}

// HasCollision returns true if two tracked names share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	clear(t.seen)
	t.order = t.order[:0]
	t.hasCollision = false
}
