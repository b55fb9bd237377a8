// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the local
// control API and the status screen.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or shown to the operator.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEntityKey is returned when an entity key is not in the
	// "<type>:<id>" form.
	MsgInvalidEntityKey = "invalid entity key, expected <type>:<id>"

	// MsgUnknownMutationKind is returned when the requested kind has no API
	// route.
	MsgUnknownMutationKind = "unknown mutation kind"

	// MsgKindEntityMismatch is returned when a kind is enqueued against an
	// entity type it does not apply to.
	MsgKindEntityMismatch = "mutation kind does not apply to entity type"

	// MsgInvalidPayload is returned for payloads that are not JSON objects.
	MsgInvalidPayload = "payload must be a JSON object"

	// MsgMutationNotFound is returned when no queued mutation exists for the
	// key.
	MsgMutationNotFound = "mutation not found"

	// MsgNotDeadLettered is returned when discard or retry targets a mutation
	// that is still pending.
	MsgNotDeadLettered = "mutation is not dead-lettered"

	// MsgSyncInProgress is returned by a waiting trigger when a pass is
	// already running. The running pass picks the trigger up.
	MsgSyncInProgress = "sync already in progress"

	// MsgEngineStopped is returned after the engine was shut down.
	MsgEngineStopped = "sync engine stopped"

	// MsgNotPullable is returned for entity types without a server list.
	MsgNotPullable = "entity type has no server list"

	// MsgPullDisabled is returned when the engine has no list puller.
	MsgPullDisabled = "list pulling is disabled"

	// MsgOffline is returned when the sync API cannot be reached.
	MsgOffline = "sync API unreachable"

	// MsgUpstreamFailed is returned when the sync API answered with an error.
	MsgUpstreamFailed = "sync API request failed"

	// MsgInternalServerError is returned when an unexpected failure occurs,
	// typically a write to the local store.
	MsgInternalServerError = "internal server error"
)
