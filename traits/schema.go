package traits

import (
	"fmt"

	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/collision"
	"github.com/arloliu/sbeview/internal/hash"
)

// Schema groups the messages of one SBE schema and indexes them for lookup.
//
// Build the value, then call Compile once before use. After Compile the schema is
// read-only and safe for concurrent use.
type Schema struct {
	Package         string
	ID              uint16
	Version         uint16
	SemanticVersion string
	Description     string
	ByteOrder       format.ByteOrder
	Header          *Header // Header is the message header; nil means StandardHeader.
	Messages        []*Message

	byID      map[uint16]*Message
	byHash    map[uint64]*Message
	byName    map[string]*Message // only populated when names collide by hash
	collision bool
}

// Compile links every message to the schema and builds the id and name indexes.
//
// Returns:
//   - errs.ErrDuplicateTemplateID if two messages share an id
//   - errs.ErrInvalidName or errs.ErrDuplicateName for empty or repeated names
func (s *Schema) Compile() error {
	tracker := collision.NewTracker()
	s.byID = make(map[uint16]*Message, len(s.Messages))
	s.byHash = make(map[uint64]*Message, len(s.Messages))
	s.byName = nil

	for _, m := range s.Messages {
		if _, dup := s.byID[m.ID]; dup {
			return fmt.Errorf("%w: %d", errs.ErrDuplicateTemplateID, m.ID)
		}

		id := hash.ID(m.Name)
		if err := tracker.Track(m.Name, id); err != nil {
			return fmt.Errorf("message %q: %w", m.Name, err)
		}

		m.schema = s
		s.byID[m.ID] = m
		if _, taken := s.byHash[id]; !taken {
			s.byHash[id] = m
		}
	}

	s.collision = tracker.HasCollision()
	if s.collision {
		s.byName = make(map[string]*Message, len(s.Messages))
		for _, m := range s.Messages {
			s.byName[m.Name] = m
		}
	}

	return nil
}

// Engine returns the byte order engine for the schema.
func (s *Schema) Engine() endian.EndianEngine {
	return endian.ForByteOrder(s.ByteOrder)
}

// HeaderTraits returns the message header descriptor, defaulting to StandardHeader.
func (s *Schema) HeaderTraits() *Header {
	if s.Header != nil {
		return s.Header
	}

	return standardHeader
}

// MessageByID returns the message with the given template id.
func (s *Schema) MessageByID(id uint16) (*Message, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// MessageByName returns the message with the given name.
func (s *Schema) MessageByName(name string) (*Message, bool) {
	if s.collision {
		m, ok := s.byName[name]
		return m, ok
	}

	m, ok := s.byHash[hash.ID(name)]
	if !ok || m.Name != name {
		return nil, false
	}

	return m, true
}
