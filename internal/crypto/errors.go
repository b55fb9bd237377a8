// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrNotSealed   = errors.New("value is not sealed")
	ErrDecrypt     = errors.New("cannot decrypt sealed value")
	ErrEmptySecret = errors.New("key chain secret is empty")
	ErrShortSalt   = errors.New("key chain salt is too short")
)
