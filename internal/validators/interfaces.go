// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks mutations before they enter the sync queue.
//
// A [Validator] accepts a value and an optional list of field names that
// limits which checks run. Errors wrap the models sentinels where one exists
// so transport layers can map them with errors.Is.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
