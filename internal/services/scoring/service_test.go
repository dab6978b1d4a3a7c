package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/model"
	"coopbingo/internal/services/scoring"
)

func TestMoveValue_EmptyBoard(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board

	// No line has any marks, so only the centre bonus scores.
	assert.Equal(t, 5.0, svc.MoveValue(b, 2, 2))
	assert.Equal(t, 0.0, svc.MoveValue(b, 0, 0))
	assert.Equal(t, 0.0, svc.MoveValue(b, 1, 3))
}

func TestMoveValue_InvalidPositions(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board
	b.Set(1, 1, model.CellPlayer)

	assert.Equal(t, scoring.InvalidMoveScore, svc.MoveValue(b, -1, 0))
	assert.Equal(t, scoring.InvalidMoveScore, svc.MoveValue(b, 0, 5))
	assert.Equal(t, scoring.InvalidMoveScore, svc.MoveValue(b, 1, 1))
}

func TestMoveValue_CompletionDominates(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board
	for col := 0; col < 4; col++ {
		b.Set(0, col, model.CellPlayer)
	}

	// Completing the row: 100 (complete) + 2×50 (four already placed)
	assert.Equal(t, 200.0, svc.MoveValue(b, 0, 4))

	// Centre: col 2 and the main diagonal each hold one mark from row 0,
	// contributing 25 + 20 apiece, plus the centre bonus.
	assert.Equal(t, 95.0, svc.MoveValue(b, 2, 2))
}

func TestMoveValue_CooperativeTiers(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())

	// One mark on the row: 0.5×50 + 2×10
	var one model.Board
	one.Set(1, 0, model.CellComputer)
	assert.Equal(t, 45.0, svc.MoveValue(one, 1, 4))

	// Two marks on the row: 50 + 3×10
	two := one
	two.Set(1, 1, model.CellPlayer)
	assert.Equal(t, 80.0, svc.MoveValue(two, 1, 4))

	// Three marks on the row: 50 + 4×10
	three := two
	three.Set(1, 2, model.CellComputer)
	assert.Equal(t, 90.0, svc.MoveValue(three, 1, 4))
}

func TestMoveValue_StackedLines(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board
	b.Set(0, 0, model.CellPlayer)
	b.Set(1, 4, model.CellComputer)

	// (0,4) sits on row 0 (one mark: 45), col 4 (one mark: 45) and the
	// anti diagonal (empty: 0).
	assert.Equal(t, 90.0, svc.MoveValue(b, 0, 4))
}

func TestRankAllMoves_EmptyBoard(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	ranked := svc.RankAllMoves(model.Board{})

	require.Len(t, ranked, model.CellCount)
	assert.Equal(t, 2, ranked[0].Row)
	assert.Equal(t, 2, ranked[0].Col)
	assert.Equal(t, 5.0, ranked[0].Score)
	assert.Equal(t, "center (3, 3)", ranked[0].Label)

	// Ties broken by row then column: (0,0) leads the zero-score pack.
	assert.Equal(t, 0, ranked[1].Row)
	assert.Equal(t, 0, ranked[1].Col)
	last := ranked[len(ranked)-1]
	assert.Equal(t, 4, last.Row)
	assert.Equal(t, 4, last.Col)
}

func TestRankAllMoves_SkipsOccupied(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board
	b.Set(2, 2, model.CellPlayer)

	ranked := svc.RankAllMoves(b)
	require.Len(t, ranked, model.CellCount-1)
	for _, m := range ranked {
		assert.False(t, m.Row == 2 && m.Col == 2)
		assert.GreaterOrEqual(t, m.Score, 0.0)
	}
}

func TestRankAllMoves_CompletingMoveFirst(t *testing.T) {
	svc := scoring.New(scoring.DefaultConfig())
	var b model.Board
	for col := 0; col < 4; col++ {
		b.Set(0, col, model.CellPlayer)
	}

	ranked := svc.RankAllMoves(b)
	require.NotEmpty(t, ranked)
	assert.Equal(t, 0, ranked[0].Row)
	assert.Equal(t, 4, ranked[0].Col)
	assert.Equal(t, 200.0, ranked[0].Score)
}

func TestMoveValue_CustomWeights(t *testing.T) {
	cfg := scoring.Config{
		Weights: scoring.Weights{Complete: 10, Cooperative: 4, Potential: 1, Center: 0},
	}
	svc := scoring.New(cfg)

	var b model.Board
	for col := 0; col < 4; col++ {
		b.Set(3, col, model.CellPlayer)
	}
	// 10 (complete) + 2x4 (four placed)
	assert.Equal(t, 18.0, svc.MoveValue(b, 3, 4))
	// (2,2) touches three started lines via (3,2), (3,3) and (3,1):
	// each contributes 0.5x4 + 2x1
	assert.Equal(t, 12.0, svc.MoveValue(b, 2, 2))
	// (1,4) shares no line with the marked row
	assert.Equal(t, 0.0, svc.MoveValue(b, 1, 4))
}
