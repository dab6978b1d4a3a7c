package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPhase  = errors.New("operation not valid in current phase")
	ErrInvalidMove   = errors.New("move is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrGameOver      = errors.New("game is over")
	ErrReentrantCall = errors.New("engine called re-entrantly from an observer")

	ErrSessionNotFound  = errors.New("session not found")
	ErrSummaryNotFound  = errors.New("game summary not found")
	ErrInvalidPasscode  = errors.New("invalid passcode")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrSessionNameEmpty = errors.New("session display name must not be empty")
)

// InvalidMoveError wraps ErrInvalidMove with the offending coordinates in
// 1-based display form.
func InvalidMoveError(row, col int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrInvalidMove, row+1, col+1)
}

// CellOccupiedError wraps ErrCellOccupied with 1-based coordinates.
func CellOccupiedError(row, col int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row+1, col+1)
}

// InvalidPhaseError wraps ErrInvalidPhase with the phase the engine was in.
func InvalidPhaseError(phase Phase) error {
	return fmt.Errorf("%w: %s", ErrInvalidPhase, phase)
}
