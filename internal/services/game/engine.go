// Package game implements the rules engine: the single owner of game state,
// the only component allowed to mutate the board.
package game

import (
	"io"
	"log/slog"
	"math"

	"coopbingo/internal/model"
	"coopbingo/internal/services/lines"
	"coopbingo/internal/services/scoring"
	"coopbingo/internal/services/suggest"
)

// Observer receives engine events. Observers are invoked synchronously in
// registration order and must not call back into mutating operations.
type Observer interface {
	OnEvent(event model.Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event model.Event)

func (f ObserverFunc) OnEvent(event model.Event) {
	f(event)
}

// Config configures an engine.
type Config struct {
	// MaxRounds is the number of player/computer round pairs per game.
	// Values below 1 fall back to the default.
	MaxRounds int
	Scoring   scoring.Config
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxRounds: model.DefaultMaxRounds,
		Scoring:   scoring.DefaultConfig(),
	}
}

// Engine is the rules state machine. It is single-threaded: all operations
// are synchronous and the caller provides any serialisation it needs.
type Engine struct {
	maxRounds int
	lines     *lines.Service
	scorer    *scoring.Service
	advisor   *suggest.Service
	logger    *slog.Logger

	board          model.Board
	phase          model.Phase
	round          int
	moves          []model.Move
	completedLines []model.Line
	lastSuggestion *model.Suggestion

	observers   []Observer
	dispatching bool
}

// New creates an engine in WaitingStart. The logger is used for lifecycle
// logging only and never affects behaviour.
func New(cfg Config, lineSvc *lines.Service, logger *slog.Logger) *Engine {
	if cfg.MaxRounds < 1 {
		cfg.MaxRounds = model.DefaultMaxRounds
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	scorer := scoring.New(cfg.Scoring)
	return &Engine{
		maxRounds: cfg.MaxRounds,
		lines:     lineSvc,
		scorer:    scorer,
		advisor:   suggest.New(scorer, cfg.Scoring.Weights),
		logger:    logger,
		phase:     model.PhaseWaitingStart,
	}
}

// Subscribe registers an observer. Observers survive Reset.
func (e *Engine) Subscribe(o Observer) {
	e.observers = append(e.observers, o)
}

// Start begins a fresh game: empty board, round 1, PlayerTurn. It may be
// called from any phase and emits a state-changed event.
func (e *Engine) Start() error {
	if e.dispatching {
		return model.ErrReentrantCall
	}

	e.board = model.Board{}
	e.round = 1
	e.moves = nil
	e.completedLines = nil
	e.phase = model.PhasePlayerTurn
	e.lastSuggestion = e.advisor.BestSuggestion(e.board)

	e.logger.Info("game started", slog.Int("max_rounds", e.maxRounds))
	e.emit(model.Event{
		Type:    model.EventStateChanged,
		Payload: model.StateChangedPayload{Snapshot: e.Snapshot()},
	})
	return nil
}

// PlayerMove places the player's mark at (row, col). Valid only in
// PlayerTurn; on success the phase advances to ComputerInput.
func (e *Engine) PlayerMove(row, col int) error {
	if e.dispatching {
		return model.ErrReentrantCall
	}
	if err := e.validateMove(model.PhasePlayerTurn, row, col); err != nil {
		e.emitError("player_move", err)
		return err
	}

	e.applyMove(row, col, model.SidePlayer)
	e.phase = model.PhaseComputerInput
	e.lastSuggestion = nil

	e.logger.Debug("player move accepted",
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Int("round", e.round),
	)
	e.emit(model.Event{
		Type:    model.EventStateChanged,
		Payload: model.StateChangedPayload{Snapshot: e.Snapshot()},
	})
	return nil
}

// ComputerMove records the computer's mark at (row, col). Valid only in
// ComputerInput; on success either the round advances or, after the final
// round, the game ends.
func (e *Engine) ComputerMove(row, col int) error {
	if e.dispatching {
		return model.ErrReentrantCall
	}
	if err := e.validateMove(model.PhaseComputerInput, row, col); err != nil {
		e.emitError("computer_move", err)
		return err
	}

	e.applyMove(row, col, model.SideComputer)

	if e.round == e.maxRounds {
		e.phase = model.PhaseGameOver
		e.lastSuggestion = nil
		e.logger.Info("game complete",
			slog.Int("rounds", e.round),
			slog.Int("completed_lines", len(e.completedLines)),
		)
		e.emit(model.Event{
			Type:    model.EventGameComplete,
			Payload: model.GameCompletePayload{Snapshot: e.Snapshot()},
		})
		e.emit(model.Event{
			Type:    model.EventStateChanged,
			Payload: model.StateChangedPayload{Snapshot: e.Snapshot()},
		})
		return nil
	}

	finished := e.round
	e.round++
	e.phase = model.PhasePlayerTurn
	e.lastSuggestion = e.advisor.BestSuggestion(e.board)

	e.logger.Debug("round complete", slog.Int("round", finished))
	e.emit(model.Event{
		Type:    model.EventRoundComplete,
		Payload: model.RoundCompletePayload{Round: finished, Snapshot: e.Snapshot()},
	})
	e.emit(model.Event{
		Type:    model.EventStateChanged,
		Payload: model.StateChangedPayload{Snapshot: e.Snapshot()},
	})
	return nil
}

// Reset returns the engine to WaitingStart as if freshly constructed.
// Observers remain attached and no event is emitted, so reset followed by
// start produces the same event trace as start alone.
func (e *Engine) Reset() error {
	if e.dispatching {
		return model.ErrReentrantCall
	}

	e.board = model.Board{}
	e.round = 0
	e.moves = nil
	e.completedLines = nil
	e.lastSuggestion = nil
	e.phase = model.PhaseWaitingStart
	return nil
}

// Snapshot returns a point-in-time copy of the full engine state. The copy
// shares nothing with the engine.
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		Board:          e.board,
		Phase:          e.phase,
		Round:          e.round,
		MaxRounds:      e.maxRounds,
		CompletedLines: append([]model.Line(nil), e.completedLines...),
		Moves:          append([]model.Move(nil), e.moves...),
		Progress:       e.ProgressPercent(),
	}
}

// CurrentPhase returns the engine's phase.
func (e *Engine) CurrentPhase() model.Phase {
	return e.phase
}

// CurrentRound returns the current round, 1-based. Zero before Start.
func (e *Engine) CurrentRound() int {
	return e.round
}

// MaxRounds returns the configured number of rounds.
func (e *Engine) MaxRounds() int {
	return e.maxRounds
}

// ProgressPercent returns round(((currentRound − 1) / MaxRounds) × 100).
func (e *Engine) ProgressPercent() float64 {
	if e.round < 1 {
		return 0
	}
	return math.Round(float64(e.round-1) / float64(e.maxRounds) * 100)
}

// RemainingCells returns the number of empty cells.
func (e *Engine) RemainingCells() int {
	return e.board.EmptyCount()
}

// IsValidMove reports whether (row, col) is in range and empty. It does not
// consider the phase.
func (e *Engine) IsValidMove(row, col int) bool {
	return e.board.IsEmptyCell(row, col)
}

// LastSuggestion returns the suggestion computed when the current player
// turn began, or nil outside a player turn.
func (e *Engine) LastSuggestion() *model.Suggestion {
	if e.lastSuggestion == nil {
		return nil
	}
	s := *e.lastSuggestion
	s.Alternatives = append([]model.ScoredMove(nil), e.lastSuggestion.Alternatives...)
	return &s
}

// RankedMoves scores every currently-empty cell, best first.
func (e *Engine) RankedMoves() []model.ScoredMove {
	return e.scorer.RankAllMoves(e.board)
}

// SimulateMove returns the board and completed lines that placing side's
// mark at (row, col) would produce, without mutating state.
func (e *Engine) SimulateMove(row, col int, side model.Side) (model.Board, []model.Line, error) {
	if !(model.Position{Row: row, Col: col}).InBounds() {
		return model.Board{}, nil, model.InvalidMoveError(row, col)
	}
	if !e.board.IsEmptyCell(row, col) {
		return model.Board{}, nil, model.CellOccupiedError(row, col)
	}

	cell := model.CellPlayer
	if side == model.SideComputer {
		cell = model.CellComputer
	}
	hypothetical := e.board
	hypothetical.Set(row, col, cell)
	return hypothetical, e.lines.AllLines(hypothetical), nil
}

// validateMove enforces the precondition chain shared by both move
// operations: game not over, correct phase, in range, cell empty.
func (e *Engine) validateMove(want model.Phase, row, col int) error {
	if e.phase == model.PhaseGameOver {
		return model.ErrGameOver
	}
	if e.phase != want {
		return model.InvalidPhaseError(e.phase)
	}
	if !(model.Position{Row: row, Col: col}).InBounds() {
		return model.InvalidMoveError(row, col)
	}
	if !e.board.IsEmptyCell(row, col) {
		return model.CellOccupiedError(row, col)
	}
	return nil
}

// applyMove mutates the board, records the move and recomputes the
// completed-line set. Callers have already validated.
func (e *Engine) applyMove(row, col int, side model.Side) {
	cell := model.CellPlayer
	if side == model.SideComputer {
		cell = model.CellComputer
	}
	e.board.Set(row, col, cell)
	e.moves = append(e.moves, model.Move{Row: row, Col: col, Round: e.round, Side: side})
	e.completedLines = e.lines.AllLines(e.board)
}

// emit delivers one event to every observer, in registration order. The
// dispatching flag makes re-entrant mutation detectable.
func (e *Engine) emit(event model.Event) {
	e.dispatching = true
	defer func() { e.dispatching = false }()
	for _, o := range e.observers {
		o.OnEvent(event)
	}
}

// emitError surfaces a rejected operation to observers. The returned error
// stays authoritative; this channel only exists for hosts that render
// failures from the event stream.
func (e *Engine) emitError(operation string, err error) {
	e.emit(model.Event{
		Type: model.EventError,
		Payload: model.ErrorPayload{
			Operation: operation,
			Message:   err.Error(),
		},
	})
}
