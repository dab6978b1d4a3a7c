package request

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	DisplayName string `json:"display_name"`
	Passcode    string `json:"passcode,omitempty"`
}

// ResumeSessionRequest is the request body for resuming a session
type ResumeSessionRequest struct {
	SessionID string `json:"session_id"`
	Passcode  string `json:"passcode,omitempty"`
}

// MoveRequest is the request body for player and computer moves
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SimulateRequest is the request body for simulating a hypothetical move
type SimulateRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Side string `json:"side"`
}
