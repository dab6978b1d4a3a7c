package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"coopbingo/internal/dependencies/mocks"
	"coopbingo/internal/model"
	"coopbingo/internal/services/game"
	"coopbingo/internal/services/lines"
	"coopbingo/internal/services/session"
	"coopbingo/internal/storage/memory"
	"coopbingo/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *session.Service
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.random.QueueString("token-one", "token-two", "token-three")

	engines := func(string) *game.Engine {
		cfg := game.DefaultConfig()
		cfg.MaxRounds = 1
		return game.New(cfg, lines.New(), testutil.NopLogger())
	}
	s.service = session.New(
		s.store, s.clock, s.random, engines, testutil.NopLogger(), session.DefaultConfig(),
	)
}

func (s *SessionSuite) TestCreateIssuesToken() {
	sess, tok, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)
	s.NotEmpty(sess.ID)
	s.Equal("Alice", sess.DisplayName)
	s.Equal("tok_token-one", tok)
	s.NotNil(sess.Engine)
	s.Equal(model.PhaseWaitingStart, sess.Engine.CurrentPhase())

	// The record is persisted
	record, err := s.store.GetSession(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal("Alice", record.DisplayName)
	s.Empty(record.PasscodeHash)
}

func (s *SessionSuite) TestCreateRequiresName() {
	_, _, err := s.service.Create(s.ctx, "", "")
	s.ErrorIs(err, model.ErrSessionNameEmpty)
}

func (s *SessionSuite) TestValidateToken() {
	sess, tok, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	got, err := s.service.ValidateToken(tok)
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)

	_, err = s.service.ValidateToken("tok_bogus")
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *SessionSuite) TestTokenExpiry() {
	_, tok, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateToken(tok)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *SessionSuite) TestInvalidateToken() {
	_, tok, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	s.service.InvalidateToken(tok)
	_, err = s.service.ValidateToken(tok)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *SessionSuite) TestResumeWithPasscode() {
	sess, _, err := s.service.Create(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	resumed, tok, err := s.service.Resume(s.ctx, sess.ID, "hunter2")
	s.Require().NoError(err)
	s.Equal(sess.ID, resumed.ID)
	s.Equal("tok_token-two", tok)
	// Live session keeps its engine
	s.Same(sess.Engine, resumed.Engine)

	_, _, err = s.service.Resume(s.ctx, sess.ID, "wrong")
	s.ErrorIs(err, model.ErrInvalidPasscode)
}

func (s *SessionSuite) TestResumeWithoutPasscode() {
	sess, _, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	_, _, err = s.service.Resume(s.ctx, sess.ID, "")
	s.NoError(err)

	// Supplying a passcode for a passcode-less session fails
	_, _, err = s.service.Resume(s.ctx, sess.ID, "anything")
	s.ErrorIs(err, model.ErrInvalidPasscode)
}

func (s *SessionSuite) TestResumeUnknownSession() {
	_, _, err := s.service.Resume(s.ctx, "no-such-id", "")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *SessionSuite) TestSummaryRecordedOnGameComplete() {
	sess, _, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	// MaxRounds is 1 in this suite's engines: one round finishes the game
	s.Require().NoError(sess.Engine.Start())
	s.Require().NoError(sess.Engine.PlayerMove(0, 0))
	s.Require().NoError(sess.Engine.ComputerMove(1, 1))

	summaries, err := s.service.Summaries(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(1, summaries[0].Rounds)
	s.Equal(1, summaries[0].PlayerMoves)
	s.Equal(1, summaries[0].ComputerMoves)
	s.Equal(model.CellPlayer, summaries[0].Board.At(0, 0))
	s.True(summaries[0].FinishedAt.Equal(s.clock.Now()))
}

func (s *SessionSuite) TestSummariesAccumulateAcrossGames() {
	sess, _, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		s.Require().NoError(sess.Engine.Start())
		s.Require().NoError(sess.Engine.PlayerMove(0, i))
		s.Require().NoError(sess.Engine.ComputerMove(1, i))
		s.clock.Advance(time.Minute)
	}

	summaries, err := s.service.Summaries(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(summaries, 2)
}

func (s *SessionSuite) TestCleanExpiredTokens() {
	_, tok1, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)
	s.clock.Advance(23 * time.Hour)
	sess2, tok2, err := s.service.Create(s.ctx, "Bob", "")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	s.service.CleanExpiredTokens()

	_, err = s.service.ValidateToken(tok1)
	s.ErrorIs(err, model.ErrInvalidToken)

	got, err := s.service.ValidateToken(tok2)
	s.Require().NoError(err)
	s.Equal(sess2.ID, got.ID)
}

func (s *SessionSuite) TestGet() {
	sess, _, err := s.service.Create(s.ctx, "Alice", "")
	s.Require().NoError(err)

	got, err := s.service.Get(sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)

	_, err = s.service.Get("missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
