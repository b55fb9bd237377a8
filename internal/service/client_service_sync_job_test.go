// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyEngine counts Trigger calls. Other methods panic through the nil
// embedded interface.
type spyEngine struct {
	SyncEngine
	triggers atomic.Int64
}

func (s *spyEngine) Trigger() {
	s.triggers.Add(1)
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spyEngine{}, time.Second)
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

func TestNewClientSyncJob_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		job := NewClientSyncJob(&spyEngine{}, interval).(*clientSyncJob)
		assert.Equal(t, 30*time.Second, job.interval)
	}
}

// ── Run / Stop ───────────────────────────────────────────────────────────────

func TestClientSyncJob_Run_Triggers(t *testing.T) {
	spy := &spyEngine{}
	job := NewClientSyncJob(spy, 10*time.Millisecond)

	job.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.triggers.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Trigger should fire several times, got %d", got)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyEngine{}
	job := NewClientSyncJob(spy, 10*time.Millisecond)

	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.triggers.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.triggers.Load(), "no triggers after Stop")
}

func TestClientSyncJob_Stop_BeforeRun_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyEngine{}, time.Second)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyEngine{}, 10*time.Millisecond)

	job.Run(context.Background())
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Rerun_StopsPrevious(t *testing.T) {
	spy := &spyEngine{}
	job := NewClientSyncJob(spy, 10*time.Millisecond)
	ctx := context.Background()

	job.Run(ctx)
	time.Sleep(30 * time.Millisecond)
	before := spy.triggers.Load()
	assert.Greater(t, before, int64(0))

	// Run again on the same job stops the first goroutine internally
	job.Run(ctx)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.triggers.Load(), before)
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spyEngine{}, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Run(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
