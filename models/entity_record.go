package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingEntityID is returned when a pulled list item has no usable "id".
var ErrMissingEntityID = errors.New("entity has no id")

// PullableEntities are the lists a full sync refreshes, in pull order.
var PullableEntities = []EntityType{EntityOrder, EntityDevice, EntityClient, EntityTicket}

// Pullable reports whether t has a server list the engine refreshes.
func (t EntityType) Pullable() bool {
	for _, p := range PullableEntities {
		if p == t {
			return true
		}
	}
	return false
}

// EntityRecord is the last server copy of one resource, kept verbatim.
type EntityRecord struct {
	Key      EntityKey       `json:"key"`
	Data     json.RawMessage `json:"data"`
	PulledAt time.Time       `json:"pulled_at"`
}

// NewEntityRecord keys a raw list item by its "id" field, which the API
// sends either as a string or as a number.
func NewEntityRecord(entityType EntityType, raw json.RawMessage, pulledAt time.Time) (EntityRecord, error) {
	var head struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return EntityRecord{}, fmt.Errorf("decode %s: %w", entityType, err)
	}

	id, err := rawID(head.ID)
	if err != nil {
		return EntityRecord{}, fmt.Errorf("%s: %w", entityType, err)
	}

	return EntityRecord{
		Key:      NewEntityKey(entityType, id),
		Data:     raw,
		PulledAt: pulledAt.UTC(),
	}, nil
}

func rawID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", ErrMissingEntityID
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", ErrMissingEntityID
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingEntityID, raw)
	}
	return n.String(), nil
}
