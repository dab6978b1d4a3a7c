package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/model"
	"coopbingo/internal/services/game"
	"coopbingo/internal/services/lines"
	"coopbingo/internal/testutil"
)

func TestBroadcaster_ForwardsEngineEvents(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	hub := m.GetOrCreateHub("session-1")
	client := NewClient(hub)
	hub.Register(client)
	waitForClients(t, hub, 1)

	b := NewBroadcaster(m, testutil.NopLogger())
	engine := game.New(game.DefaultConfig(), lines.New(), testutil.NopLogger())
	engine.Subscribe(b.Observer("session-1"))

	require.NoError(t, engine.Start())

	select {
	case msg := <-client.send:
		text := string(msg)
		assert.Contains(t, text, "event: state_changed\n")

		// The payload is the JSON-encoded snapshot wrapper
		var payload struct {
			Snapshot model.Snapshot `json:"snapshot"`
		}
		data := text[len("event: state_changed\ndata: ") : len(text)-2]
		require.NoError(t, json.Unmarshal([]byte(data), &payload))
		assert.Equal(t, model.PhasePlayerTurn, payload.Snapshot.Phase)
		assert.Equal(t, 1, payload.Snapshot.Round)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestBroadcaster_NoHubIsNoop(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(m, testutil.NopLogger())

	engine := game.New(game.DefaultConfig(), lines.New(), testutil.NopLogger())
	engine.Subscribe(b.Observer("nobody-watching"))

	// Must not panic or block with no hub for the session
	require.NoError(t, engine.Start())
	require.NoError(t, engine.PlayerMove(0, 0))
}
