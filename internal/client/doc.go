// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It starts the single sync engine of the process together with its
// background workers, the optional control API and the status screen, and
// stops them in reverse order on exit or on SIGINT/SIGTERM.
package client
