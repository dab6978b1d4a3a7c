package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"coopbingo/internal/api/apierr"
	"coopbingo/internal/api/middleware"
	"coopbingo/internal/api/request"
	"coopbingo/internal/api/response"
	"coopbingo/internal/model"
	"coopbingo/internal/services/bot"
	"coopbingo/internal/services/game"
	"coopbingo/internal/services/session"
	"coopbingo/internal/web/sse"
)

// SummaryLister is the slice of the session service the game handler uses.
type SummaryLister interface {
	Summaries(ctx context.Context, sessionID string) ([]*model.GameSummary, error)
}

var _ SummaryLister = (*session.Service)(nil)

// GameHandler handles game endpoints. Every route operates on the
// authenticated session's engine.
type GameHandler struct {
	summaries  SummaryLister
	strategy   bot.Strategy
	hubManager *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(summaries SummaryLister, strategy bot.Strategy, hubManager *sse.HubManager) *GameHandler {
	return &GameHandler{
		summaries:  summaries,
		strategy:   strategy,
		hubManager: hubManager,
	}
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var state response.GameState
	err := sess.Do(func(engine *game.Engine) error {
		if err := engine.Start(); err != nil {
			return err
		}
		state = response.GameStateFromSnapshot(engine.Snapshot())
		return nil
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, state)
}

// Reset handles POST /api/v1/game/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	if err := sess.Do(func(engine *game.Engine) error {
		return engine.Reset()
	}); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var state response.GameState
	_ = sess.Do(func(engine *game.Engine) error {
		state = response.GameStateFromSnapshot(engine.Snapshot())
		return nil
	})

	response.JSON(w, http.StatusOK, state)
}

// PlayerMove handles POST /api/v1/game/player-move
func (h *GameHandler) PlayerMove(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, func(engine *game.Engine, row, col int) error {
		return engine.PlayerMove(row, col)
	})
}

// ComputerMove handles POST /api/v1/game/computer-move
func (h *GameHandler) ComputerMove(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, func(engine *game.Engine, row, col int) error {
		return engine.ComputerMove(row, col)
	})
}

// move decodes a move request and applies it through op.
func (h *GameHandler) move(w http.ResponseWriter, r *http.Request, op func(engine *game.Engine, row, col int) error) {
	sess := middleware.MustGetSession(r.Context())

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	var result response.MoveResult
	err := sess.Do(func(engine *game.Engine) error {
		if err := op(engine, req.Row, req.Col); err != nil {
			return err
		}
		snap := engine.Snapshot()
		result = response.MoveResult{
			Move:  &snap.Moves[len(snap.Moves)-1],
			State: response.GameStateFromSnapshot(snap),
		}
		return nil
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ComputerMoveRandom handles POST /api/v1/game/computer-move/random. The
// server picks a uniform random empty cell on the computer's behalf.
func (h *GameHandler) ComputerMoveRandom(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var result response.MoveResult
	err := sess.Do(func(engine *game.Engine) error {
		pos, ok := h.strategy.ChooseMove(engine.Snapshot().Board)
		if !ok {
			return model.InvalidPhaseError(engine.CurrentPhase())
		}
		if err := engine.ComputerMove(pos.Row, pos.Col); err != nil {
			return err
		}
		snap := engine.Snapshot()
		result = response.MoveResult{
			Move:  &snap.Moves[len(snap.Moves)-1],
			State: response.GameStateFromSnapshot(snap),
		}
		return nil
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Suggestion handles GET /api/v1/game/suggestion. The suggestion is null
// outside a player turn.
func (h *GameHandler) Suggestion(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var suggestion *model.Suggestion
	_ = sess.Do(func(engine *game.Engine) error {
		suggestion = engine.LastSuggestion()
		return nil
	})

	response.JSON(w, http.StatusOK, map[string]*model.Suggestion{"suggestion": suggestion})
}

// Simulate handles POST /api/v1/game/simulate
func (h *GameHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	var side model.Side
	switch req.Side {
	case "", string(model.SidePlayer):
		side = model.SidePlayer
	case string(model.SideComputer):
		side = model.SideComputer
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("side must be \"player\" or \"computer\""))
		return
	}

	var sim response.Simulation
	err := sess.Do(func(engine *game.Engine) error {
		board, completed, err := engine.SimulateMove(req.Row, req.Col, side)
		if err != nil {
			return err
		}
		sim = response.Simulation{
			Board:          board.Grid(),
			CompletedLines: completed,
		}
		return nil
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, sim)
}

// Summaries handles GET /api/v1/game/summaries
func (h *GameHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	summaries, err := h.summaries.Summaries(r.Context(), sess.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.GameSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, response.GameSummaryFromModel(s))
	}
	response.JSON(w, http.StatusOK, out)
}

// Events handles GET /api/v1/events: the SSE stream of this session's
// engine events.
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	hub := h.hubManager.GetOrCreateHub(sess.ID)
	sse.ServeSSE(w, r, hub)
}
