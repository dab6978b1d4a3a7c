package model

import "time"

// Phase is the engine's lifecycle state.
type Phase string

const (
	PhaseWaitingStart  Phase = "waiting_start"
	PhasePlayerTurn    Phase = "player_turn"
	PhaseComputerInput Phase = "computer_input"
	PhaseGameOver      Phase = "game_over"
)

// Valid reports whether the phase is one of the four defined values.
func (p Phase) Valid() bool {
	switch p {
	case PhaseWaitingStart, PhasePlayerTurn, PhaseComputerInput, PhaseGameOver:
		return true
	}
	return false
}

// DefaultMaxRounds is the number of player/computer round pairs in a game.
const DefaultMaxRounds = 8

// Snapshot is a point-in-time copy of the engine state. Board is a value
// type, so the snapshot shares nothing with the live engine.
type Snapshot struct {
	Board          Board   `json:"board"`
	Phase          Phase   `json:"phase"`
	Round          int     `json:"round"`
	MaxRounds      int     `json:"max_rounds"`
	CompletedLines []Line  `json:"completed_lines"`
	Moves          []Move  `json:"moves"`
	Progress       float64 `json:"progress"`
}

// ScoredMove is one ranked candidate from the scorer.
type ScoredMove struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Confidence grades how decisively a suggestion beats the runner-up.
type Confidence string

const (
	ConfidenceVeryHigh Confidence = "very_high"
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceLow      Confidence = "low"
)

// Suggestion is the advisor's output: the best move, up to three
// alternatives, and a confidence grade.
type Suggestion struct {
	Best         ScoredMove   `json:"best"`
	Alternatives []ScoredMove `json:"alternatives"`
	Confidence   Confidence   `json:"confidence"`
}

// SessionRecord is the persisted form of a session.
type SessionRecord struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	PasscodeHash []byte    `json:"passcode_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GameSummary is the persisted record of one finished game.
type GameSummary struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	Rounds         int       `json:"rounds"`
	CompletedLines int       `json:"completed_lines"`
	Board          Board     `json:"board"`
	PlayerMoves    int       `json:"player_moves"`
	ComputerMoves  int       `json:"computer_moves"`
	FinishedAt     time.Time `json:"finished_at"`
}
