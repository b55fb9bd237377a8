// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownMutationKind is returned for kinds no request is defined for.
	ErrUnknownMutationKind = errors.New("unknown mutation kind")
	// ErrEntityTypeMismatch is returned when a kind is enqueued for an entity
	// type it does not apply to.
	ErrEntityTypeMismatch = errors.New("mutation kind does not apply to entity type")
)

// MutationKind is the domain operation tag of a queued write. The sync
// dispatcher maps every kind to one API request.
type MutationKind string

const (
	// MutationOrderUpdated pushes the locally edited order status and notes.
	MutationOrderUpdated MutationKind = "order_updated"
	// MutationDeviceUpdated pushes device status, diagnosis and resolution.
	MutationDeviceUpdated MutationKind = "device_updated"
	// MutationTicketMessageCreated posts a new message to a ticket thread.
	MutationTicketMessageCreated MutationKind = "ticket_message_created"
	// MutationQuoteApproved approves a repair quote on behalf of a customer.
	MutationQuoteApproved MutationKind = "quote_approved"
	// MutationQuoteRejected rejects a repair quote on behalf of a customer.
	MutationQuoteRejected MutationKind = "quote_rejected"
	// MutationEnquiryReply posts a customer reply to an enquiry.
	MutationEnquiryReply MutationKind = "enquiry_reply"
)

var mutationEntities = map[MutationKind]EntityType{
	MutationOrderUpdated:         EntityOrder,
	MutationDeviceUpdated:        EntityDevice,
	MutationTicketMessageCreated: EntityTicket,
	MutationQuoteApproved:        EntityOrder,
	MutationQuoteRejected:        EntityOrder,
	MutationEnquiryReply:         EntityEnquiry,
}

// Entity returns the entity type k applies to.
func (k MutationKind) Entity() (EntityType, bool) {
	t, ok := mutationEntities[k]
	return t, ok
}

// Known reports whether k is one of the defined kinds.
func (k MutationKind) Known() bool {
	_, ok := mutationEntities[k]
	return ok
}

// CheckTarget returns ErrUnknownMutationKind or ErrEntityTypeMismatch when
// k cannot be applied to key.
func (k MutationKind) CheckTarget(key EntityKey) error {
	t, ok := mutationEntities[k]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMutationKind, k)
	}
	if key.Type != t {
		return fmt.Errorf("%w: %s on %s", ErrEntityTypeMismatch, k, key)
	}
	return nil
}

// MutationState tells whether a queued mutation is still retried or has been
// parked for manual resolution.
type MutationState string

const (
	MutationPending MutationState = "pending"
	MutationDead    MutationState = "dead"
)

// PendingMutation is one local write that the server has not confirmed yet.
type PendingMutation struct {
	// ID identifies this particular intent. It changes whenever the entry is
	// replaced and is sent to the server as the idempotency key.
	ID string `json:"id"`

	// Key is the entity the mutation applies to.
	Key EntityKey `json:"entity_key"`

	// Kind selects the request the dispatcher builds.
	Kind MutationKind `json:"kind"`

	// Payload is the optional JSON request body.
	Payload json.RawMessage `json:"payload,omitempty"`

	// EnqueuedAt is the time of the latest enqueue for Key.
	EnqueuedAt time.Time `json:"enqueued_at"`

	// Seq is a monotonically increasing insertion number used to keep the
	// queue order stable across restarts.
	Seq uint64 `json:"seq"`

	// Attempts counts failed delivery attempts since the last enqueue.
	Attempts int `json:"attempts"`

	// State is pending or dead.
	State MutationState `json:"state"`

	// LastError is the reason of the most recent failure, if any.
	LastError string `json:"last_error,omitempty"`

	// NextAttemptAt gates retries: a pass skips the entry until this time.
	NextAttemptAt time.Time `json:"next_attempt_at,omitempty"`
}

// IsDead reports whether the mutation was moved to the dead-letter state.
func (m PendingMutation) IsDead() bool {
	return m.State == MutationDead
}

// ReadyAt reports whether the backoff gate has elapsed at now.
func (m PendingMutation) ReadyAt(now time.Time) bool {
	return m.NextAttemptAt.IsZero() || !now.Before(m.NextAttemptAt)
}
