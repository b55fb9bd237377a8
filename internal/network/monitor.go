// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks whether the API is reachable. [Monitor] is the
// observable flag read by the request executor and the sync engine;
// [Prober] keeps it current by probing the API base URL.
package network

import "sync"

// Monitor is an observable reachability flag. The zero value is not usable;
// call [NewMonitor].
type Monitor struct {
	mu        sync.RWMutex
	reachable bool
	nextID    int
	subs      map[int]chan bool
}

// NewMonitor returns a monitor with the given initial value.
func NewMonitor(reachable bool) *Monitor {
	return &Monitor{
		reachable: reachable,
		subs:      make(map[int]chan bool),
	}
}

// IsReachable implements adapter.ReachabilityChecker.
func (m *Monitor) IsReachable() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reachable
}

// Set updates the flag and notifies subscribers when the value changed.
// It reports whether it did.
func (m *Monitor) Set(reachable bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reachable == reachable {
		return false
	}
	m.reachable = reachable

	for _, ch := range m.subs {
		publishLatest(ch, reachable)
	}
	return true
}

// Subscribe returns a channel receiving every transition. A slow reader
// only ever sees the latest value. cancel closes the channel.
func (m *Monitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan bool, 1)
	m.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publishLatest replaces a stale undelivered value. Callers hold m.mu, so
// the channel has a single sender.
func publishLatest(ch chan bool, v bool) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
