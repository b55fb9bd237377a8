// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyEntityKey is returned when a dead-letter route is called without a
// key path segment.
var ErrEmptyEntityKey = errors.New("empty entity key in path")
