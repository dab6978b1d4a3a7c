// Package session manages named sessions, each owning one rules engine.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coopbingo/internal/dependencies/clock"
	"coopbingo/internal/dependencies/random"
	"coopbingo/internal/model"
	"coopbingo/internal/services/game"
	"coopbingo/internal/storage"
)

// tokenAlphabet is the character set for bearer tokens.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// tokenLength is the number of random characters in a bearer token.
const tokenLength = 32

// EngineFactory builds a fresh rules engine for a new session. The session
// ID lets hosts attach per-session observers at construction time.
type EngineFactory func(sessionID string) *game.Engine

// Session is a live session: identity plus the engine that owns its game.
type Session struct {
	ID          string
	DisplayName string
	Engine      *game.Engine
	CreatedAt   time.Time

	mu sync.Mutex
}

// Do runs f with exclusive access to the session's engine. The engine is
// single-threaded; concurrent hosts serialise access through here.
func (s *Session) Do(f func(engine *game.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.Engine)
}

// token is one issued bearer credential.
type token struct {
	session   *Session
	expiresAt time.Time
}

// Config holds configuration for the session service.
type Config struct {
	TokenDuration time.Duration
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// Service manages sessions and their bearer tokens. Live sessions are held
// in memory; session records and finished-game summaries go through storage.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	engines EngineFactory
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	tokens   map[string]*token

	tokenDuration time.Duration
}

// New creates a new session service.
func New(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	engines EngineFactory,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		storage:       store,
		clock:         clk,
		random:        rnd,
		engines:       engines,
		logger:        logger,
		sessions:      make(map[string]*Session),
		tokens:        make(map[string]*token),
		tokenDuration: cfg.TokenDuration,
	}
}

// Create makes a new session with the given display name and optional
// passcode, and issues a bearer token for it.
func (s *Service) Create(ctx context.Context, displayName, passcode string) (*Session, string, error) {
	if displayName == "" {
		return nil, "", model.ErrSessionNameEmpty
	}

	var hash []byte
	if passcode != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
	}

	now := s.clock.Now()
	record := &model.SessionRecord{
		ID:           uuid.NewString(),
		DisplayName:  displayName,
		PasscodeHash: hash,
		CreatedAt:    now,
	}
	if err := s.storage.SaveSession(ctx, record); err != nil {
		return nil, "", err
	}

	session := s.attach(record)

	s.logger.Info("session created",
		slog.String("session_id", session.ID),
		slog.String("display_name", displayName),
	)
	return session, s.issueToken(session), nil
}

// Resume re-authenticates an existing session by ID and passcode and issues
// a fresh bearer token. If the session is no longer live in memory, it is
// rehydrated from its stored record with a fresh engine; game state is not
// persisted across restarts.
func (s *Service) Resume(ctx context.Context, id, passcode string) (*Session, string, error) {
	record, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if len(record.PasscodeHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(record.PasscodeHash, []byte(passcode)); err != nil {
			return nil, "", model.ErrInvalidPasscode
		}
	} else if passcode != "" {
		return nil, "", model.ErrInvalidPasscode
	}

	s.mu.RLock()
	session, live := s.sessions[id]
	s.mu.RUnlock()
	if !live {
		session = s.attach(record)
	}

	s.logger.Info("session resumed", slog.String("session_id", id))
	return session, s.issueToken(session), nil
}

// ValidateToken returns the session a bearer token belongs to.
func (s *Service) ValidateToken(tok string) (*Session, error) {
	s.mu.RLock()
	t, ok := s.tokens[tok]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrInvalidToken
	}
	if s.clock.Now().After(t.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, tok)
		s.mu.Unlock()
		return nil, model.ErrInvalidToken
	}
	return t.session, nil
}

// InvalidateToken revokes a bearer token.
func (s *Service) InvalidateToken(tok string) {
	s.mu.Lock()
	delete(s.tokens, tok)
	s.mu.Unlock()
}

// Get returns a live session by ID.
func (s *Service) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// Summaries lists the finished-game summaries recorded for a session,
// oldest first.
func (s *Service) Summaries(ctx context.Context, sessionID string) ([]*model.GameSummary, error) {
	return s.storage.ListSummariesForSession(ctx, sessionID)
}

// CleanExpiredTokens removes expired tokens (call periodically).
func (s *Service) CleanExpiredTokens() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for tok, t := range s.tokens {
		if now.After(t.expiresAt) {
			delete(s.tokens, tok)
		}
	}
}

// attach builds the live session for a record: a fresh engine with a
// summary-recording observer, registered in the session map.
func (s *Service) attach(record *model.SessionRecord) *Session {
	session := &Session{
		ID:          record.ID,
		DisplayName: record.DisplayName,
		Engine:      s.engines(record.ID),
		CreatedAt:   record.CreatedAt,
	}
	session.Engine.Subscribe(game.ObserverFunc(func(event model.Event) {
		if event.Type != model.EventGameComplete {
			return
		}
		payload, ok := event.Payload.(model.GameCompletePayload)
		if !ok {
			return
		}
		s.recordSummary(session.ID, payload.Snapshot)
	}))

	s.mu.Lock()
	s.sessions[record.ID] = session
	s.mu.Unlock()
	return session
}

// recordSummary persists the summary of a finished game.
func (s *Service) recordSummary(sessionID string, snap model.Snapshot) {
	playerMoves, computerMoves := 0, 0
	for _, m := range snap.Moves {
		if m.Side == model.SidePlayer {
			playerMoves++
		} else {
			computerMoves++
		}
	}

	summary := &model.GameSummary{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Rounds:         snap.Round,
		CompletedLines: len(snap.CompletedLines),
		Board:          snap.Board,
		PlayerMoves:    playerMoves,
		ComputerMoves:  computerMoves,
		FinishedAt:     s.clock.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.storage.SaveSummary(ctx, summary); err != nil {
		s.logger.Error("failed to save game summary",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("game summary recorded",
		slog.String("session_id", sessionID),
		slog.String("summary_id", summary.ID),
		slog.Int("completed_lines", summary.CompletedLines),
	)
}

// issueToken mints and registers a bearer token for a session.
func (s *Service) issueToken(session *Session) string {
	tok := "tok_" + s.random.String(tokenLength, tokenAlphabet)
	now := s.clock.Now()

	s.mu.Lock()
	s.tokens[tok] = &token{
		session:   session,
		expiresAt: now.Add(s.tokenDuration),
	}
	s.mu.Unlock()
	return tok
}
