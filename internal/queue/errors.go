// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package queue

import "errors"

var (
	ErrNotFound         = errors.New("mutation not found")
	ErrNotDeadLettered  = errors.New("mutation is not dead-lettered")
	ErrInvalidMutation  = errors.New("invalid mutation")
	ErrSuperseded       = errors.New("mutation was superseded by a newer enqueue")
	ErrPersistingChange = errors.New("error persisting queue change")
)
