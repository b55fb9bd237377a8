package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_SetNotifiesOnChangeOnly(t *testing.T) {
	m := NewMonitor(true)
	ch, cancel := m.Subscribe()
	defer cancel()

	assert.False(t, m.Set(true))
	select {
	case v := <-ch:
		t.Fatalf("unexpected notification %v", v)
	default:
	}

	assert.True(t, m.Set(false))
	assert.False(t, m.IsReachable())

	select {
	case v := <-ch:
		assert.False(t, v)
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}
}

func TestMonitor_SlowReaderSeesLatest(t *testing.T) {
	m := NewMonitor(true)
	ch, cancel := m.Subscribe()
	defer cancel()

	m.Set(false)
	m.Set(true)
	m.Set(false)

	v := <-ch
	assert.False(t, v)

	select {
	case extra := <-ch:
		t.Fatalf("stale value delivered: %v", extra)
	default:
	}
}

func TestMonitor_CancelClosesChannel(t *testing.T) {
	m := NewMonitor(false)
	ch, cancel := m.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	require.False(t, open)

	// publishing after cancel must not panic
	m.Set(true)
}

func TestMonitor_MultipleSubscribers(t *testing.T) {
	m := NewMonitor(false)
	a, cancelA := m.Subscribe()
	defer cancelA()
	b, cancelB := m.Subscribe()
	defer cancelB()

	m.Set(true)

	assert.True(t, <-a)
	assert.True(t, <-b)
}
