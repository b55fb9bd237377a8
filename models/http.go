package models

import (
	"encoding/json"
	"time"
)

// EnqueueRequest is the body of POST /api/mutations on the local control API.
type EnqueueRequest struct {
	// EntityKey identifies the entity, e.g. "order:42".
	EntityKey EntityKey `json:"entity_key"`

	// Kind selects the API request the write becomes.
	Kind MutationKind `json:"kind"`

	// Payload is forwarded verbatim as the request body. Optional.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EnqueueResponse reports the queue size after an enqueue.
type EnqueueResponse struct {
	Pending int `json:"pending"`
}

// DeadLetter is the control API view of a parked mutation.
type DeadLetter struct {
	ID         string       `json:"id"`
	EntityKey  EntityKey    `json:"entity_key"`
	Kind       MutationKind `json:"kind"`
	Attempts   int          `json:"attempts"`
	LastError  string       `json:"last_error"`
	EnqueuedAt time.Time    `json:"enqueued_at"`
}

// DeadLettersResponse lists parked mutations oldest first.
type DeadLettersResponse struct {
	DeadLetters []DeadLetter `json:"dead_letters"`
	Length      int          `json:"length"`
}

// NewDeadLetter converts a parked mutation into its control API view.
func NewDeadLetter(m PendingMutation) DeadLetter {
	return DeadLetter{
		ID:         m.ID,
		EntityKey:  m.Key,
		Kind:       m.Kind,
		Attempts:   m.Attempts,
		LastError:  m.LastError,
		EnqueuedAt: m.EnqueuedAt,
	}
}

// PullResponse reports how many records one list pull cached.
type PullResponse struct {
	EntityType EntityType `json:"entity_type"`
	Pulled     int        `json:"pulled"`
}

// EntitiesResponse lists the cached server copies of one entity type.
type EntitiesResponse struct {
	Entities []EntityRecord `json:"entities"`
	Length   int            `json:"length"`
}
