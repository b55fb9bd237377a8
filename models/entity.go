package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntityKey is returned when an entity key string cannot be split
// into a non-empty type and id.
var ErrInvalidEntityKey = errors.New("invalid entity key")

// EntityType names the kind of server-side resource a mutation targets.
type EntityType string

const (
	EntityOrder   EntityType = "order"
	EntityDevice  EntityType = "device"
	EntityClient  EntityType = "client"
	EntityTicket  EntityType = "ticket"
	EntityEnquiry EntityType = "enquiry"
)

// EntityKey is the stable identity of a single server-side resource. The
// mutation queue holds at most one pending mutation per key.
//
// Its canonical string form is "<type>:<id>", e.g. "order:123".
type EntityKey struct {
	Type EntityType
	ID   string
}

// NewEntityKey builds an [EntityKey] from its parts.
func NewEntityKey(entityType EntityType, id string) EntityKey {
	return EntityKey{Type: entityType, ID: id}
}

// ParseEntityKey parses the canonical "<type>:<id>" form. The id may itself
// contain colons; only the first one separates the type.
func ParseEntityKey(s string) (EntityKey, error) {
	entityType, id, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || entityType == "" || id == "" {
		return EntityKey{}, fmt.Errorf("%w: %q", ErrInvalidEntityKey, s)
	}

	return EntityKey{Type: EntityType(entityType), ID: id}, nil
}

// String returns the canonical "<type>:<id>" form.
func (k EntityKey) String() string {
	return string(k.Type) + ":" + k.ID
}

// IsZero reports whether the key has neither a type nor an id.
func (k EntityKey) IsZero() bool {
	return k.Type == "" && k.ID == ""
}

// Validate returns [ErrInvalidEntityKey] if either part is empty.
func (k EntityKey) Validate() error {
	if k.Type == "" || k.ID == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEntityKey, k.String())
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler so keys serialise as their
// canonical string in JSON documents and map keys.
func (k EntityKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EntityKey) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
