package response

import (
	"time"

	"coopbingo/internal/model"
	"coopbingo/internal/services/session"
)

// Session represents a session in API responses
type Session struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionFromModel converts a live session to a response Session
func SessionFromModel(s *session.Session) Session {
	return Session{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		CreatedAt:   s.CreatedAt,
	}
}

// AuthResponse is the response for session create/resume endpoints
type AuthResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

// GameState is the response for game state endpoints
type GameState struct {
	Board          [][]string   `json:"board"`
	Phase          string       `json:"phase"`
	Round          int          `json:"round"`
	MaxRounds      int          `json:"max_rounds"`
	Progress       float64      `json:"progress"`
	RemainingCells int          `json:"remaining_cells"`
	CompletedLines []model.Line `json:"completed_lines"`
	Moves          []model.Move `json:"moves"`
}

// GameStateFromSnapshot converts an engine snapshot to a response GameState
func GameStateFromSnapshot(snap model.Snapshot) GameState {
	return GameState{
		Board:          snap.Board.Grid(),
		Phase:          string(snap.Phase),
		Round:          snap.Round,
		MaxRounds:      snap.MaxRounds,
		Progress:       snap.Progress,
		RemainingCells: snap.Board.EmptyCount(),
		CompletedLines: snap.CompletedLines,
		Moves:          snap.Moves,
	}
}

// MoveResult is the response for accepted moves
type MoveResult struct {
	Move  *model.Move `json:"move,omitempty"`
	State GameState   `json:"state"`
}

// Simulation is the response for the simulate endpoint
type Simulation struct {
	Board          [][]string   `json:"board"`
	CompletedLines []model.Line `json:"completed_lines"`
}

// GameSummary represents a completed game in API responses
type GameSummary struct {
	ID             string     `json:"id"`
	Rounds         int        `json:"rounds"`
	CompletedLines int        `json:"completed_lines"`
	Board          [][]string `json:"board"`
	PlayerMoves    int        `json:"player_moves"`
	ComputerMoves  int        `json:"computer_moves"`
	FinishedAt     time.Time  `json:"finished_at"`
}

// GameSummaryFromModel converts a model.GameSummary
func GameSummaryFromModel(s *model.GameSummary) GameSummary {
	return GameSummary{
		ID:             s.ID,
		Rounds:         s.Rounds,
		CompletedLines: s.CompletedLines,
		Board:          s.Board.Grid(),
		PlayerMoves:    s.PlayerMoves,
		ComputerMoves:  s.ComputerMoves,
		FinishedAt:     s.FinishedAt,
	}
}
