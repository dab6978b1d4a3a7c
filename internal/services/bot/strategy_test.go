package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/dependencies/mocks"
	"coopbingo/internal/model"
	"coopbingo/internal/services/bot"
	"coopbingo/internal/services/scoring"
)

func TestRandomStrategy_PicksFromEmptyCells(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(3)
	strategy := bot.NewRandomStrategy(rnd)

	var b model.Board
	b.Set(0, 0, model.CellPlayer)

	pos, ok := strategy.ChooseMove(b)
	require.True(t, ok)
	// Empty cells in row-major order start at (0,1); index 3 is (0,4)
	assert.Equal(t, model.Position{Row: 0, Col: 4}, pos)
}

func TestRandomStrategy_FullBoard(t *testing.T) {
	strategy := bot.NewRandomStrategy(mocks.NewMockRandom())

	var b model.Board
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			b.Set(row, col, model.CellComputer)
		}
	}

	_, ok := strategy.ChooseMove(b)
	assert.False(t, ok)
}

func TestGreedyStrategy_TakesTopRankedMove(t *testing.T) {
	strategy := bot.NewGreedyStrategy(scoring.New(scoring.DefaultConfig()))

	var b model.Board
	for col := 0; col < 4; col++ {
		b.Set(0, col, model.CellPlayer)
	}

	pos, ok := strategy.ChooseMove(b)
	require.True(t, ok)
	assert.Equal(t, model.Position{Row: 0, Col: 4}, pos)
}

func TestGreedyStrategy_EmptyBoardPrefersCentre(t *testing.T) {
	strategy := bot.NewGreedyStrategy(scoring.New(scoring.DefaultConfig()))

	pos, ok := strategy.ChooseMove(model.Board{})
	require.True(t, ok)
	assert.Equal(t, model.Position{Row: 2, Col: 2}, pos)
}
