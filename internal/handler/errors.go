// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no control API
// address is configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// IsNoHandlers reports whether err means the control API is disabled.
func IsNoHandlers(err error) bool {
	return errors.Is(err, errNoHandlersAreCreated)
}
