package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/testutil"
)

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for hub.ClientCount() != want {
		select {
		case <-deadline:
			t.Fatalf("hub never reached %d clients (have %d)", want, hub.ClientCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.BroadcastEvent("state_changed", `{"round":1}`)

	select {
	case msg := <-client.send:
		assert.Equal(t, "event: state_changed\ndata: {\"round\":1}\n\n", string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	_, open := <-client.send
	assert.False(t, open)
}

func TestFormatSSEMessage_MultiLine(t *testing.T) {
	msg := formatSSEMessage("game_complete", "line1\nline2")
	assert.Equal(t, "event: game_complete\ndata: line1\ndata: line2\n\n", string(msg))
}

func TestHubManager(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	hub := m.GetOrCreateHub("session-1")
	require.NotNil(t, hub)
	assert.Same(t, hub, m.GetOrCreateHub("session-1"))
	assert.Same(t, hub, m.GetHub("session-1"))
	assert.Nil(t, m.GetHub("session-2"))

	m.RemoveHub("session-1")
	assert.Nil(t, m.GetHub("session-1"))
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	busy := m.GetOrCreateHub("busy")
	client := NewClient(busy)
	busy.Register(client)
	waitForClients(t, busy, 1)

	m.GetOrCreateHub("idle")
	m.CleanupEmptyHubs()

	assert.NotNil(t, m.GetHub("busy"))
	assert.Nil(t, m.GetHub("idle"))
}
