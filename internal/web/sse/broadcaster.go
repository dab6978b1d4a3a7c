package sse

import (
	"encoding/json"
	"log/slog"

	"coopbingo/internal/model"
	"coopbingo/internal/services/game"
)

// Broadcaster forwards engine events to SSE clients as JSON.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Observer returns an engine observer that forwards the session's events to
// its hub. Intended to be subscribed when the session's engine is built.
func (b *Broadcaster) Observer(sessionID string) game.Observer {
	return game.ObserverFunc(func(event model.Event) {
		hub := b.hubManager.GetHub(sessionID)
		if hub == nil {
			return
		}

		data, err := json.Marshal(event.Payload)
		if err != nil {
			b.logger.Error("sse failed to encode event",
				slog.String("session_id", sessionID),
				slog.String("event", string(event.Type)),
				slog.Any("error", err))
			return
		}
		hub.BroadcastEvent(string(event.Type), string(data))
	})
}
