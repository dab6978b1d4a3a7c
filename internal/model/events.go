package model

// EventType tags an engine event.
type EventType string

const (
	EventStateChanged  EventType = "state_changed"
	EventRoundComplete EventType = "round_complete"
	EventGameComplete  EventType = "game_complete"
	EventError         EventType = "error"
)

// Event is one notification from the engine. Payload is one of the
// *Payload types below, matching Type.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// StateChangedPayload accompanies every state transition. It carries a full
// snapshot so observers never need to call back into the engine.
type StateChangedPayload struct {
	Snapshot Snapshot `json:"snapshot"`
}

// RoundCompletePayload is emitted when a computer move closes a round
// without ending the game. Round is the round that just finished.
type RoundCompletePayload struct {
	Round    int      `json:"round"`
	Snapshot Snapshot `json:"snapshot"`
}

// GameCompletePayload is emitted once, when the final round ends.
type GameCompletePayload struct {
	Snapshot Snapshot `json:"snapshot"`
}

// ErrorPayload reports a rejected operation.
type ErrorPayload struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
}
