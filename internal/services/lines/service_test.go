package lines_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/model"
	"coopbingo/internal/services/lines"
)

func fillRow(b *model.Board, row int, s model.CellState) {
	for col := 0; col < model.BoardSize; col++ {
		b.Set(row, col, s)
	}
}

func fillCol(b *model.Board, col int, s model.CellState) {
	for row := 0; row < model.BoardSize; row++ {
		b.Set(row, col, s)
	}
}

func TestAllLines_EmptyBoard(t *testing.T) {
	svc := lines.New()
	assert.Empty(t, svc.AllLines(model.Board{}))
	assert.Equal(t, 0, svc.CountCompleted(model.Board{}))
}

func TestAllLines_SingleRow(t *testing.T) {
	svc := lines.New()
	var b model.Board
	fillRow(&b, 2, model.CellPlayer)

	got := svc.AllLines(b)
	require.Len(t, got, 1)
	assert.Equal(t, model.LineHorizontal, got[0].Kind)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, model.Position{Row: 2, Col: 0}, got[0].Positions[0])
}

func TestAllLines_MixedOwnershipCounts(t *testing.T) {
	svc := lines.New()
	var b model.Board
	// Alternate player and computer cells along row 0; the game is
	// cooperative, so the line still counts.
	for col := 0; col < model.BoardSize; col++ {
		s := model.CellPlayer
		if col%2 == 1 {
			s = model.CellComputer
		}
		b.Set(0, col, s)
	}

	got := svc.AllLines(b)
	require.Len(t, got, 1)
	assert.Equal(t, model.CellComputer, got[0].Values[1])
}

func TestAllLines_AlmostComplete(t *testing.T) {
	svc := lines.New()
	var b model.Board
	fillRow(&b, 0, model.CellPlayer)
	b.Set(0, 3, model.CellEmpty)

	assert.Empty(t, svc.AllLines(b))
}

func TestAllLines_Diagonals(t *testing.T) {
	svc := lines.New()
	var b model.Board
	for i := 0; i < model.BoardSize; i++ {
		b.Set(i, i, model.CellPlayer)
		b.Set(i, model.BoardSize-1-i, model.CellComputer)
	}

	got := svc.AllLines(b)
	require.Len(t, got, 2)
	assert.Equal(t, model.LineDiagonalMain, got[0].Kind)
	assert.Equal(t, model.LineDiagonalAnti, got[1].Kind)
	assert.True(t, svc.IsComplete(b, model.LineDiagonalMain, 0))
	assert.False(t, svc.IsComplete(b, model.LineHorizontal, 0))
}

func TestAllLines_DeterministicOrder(t *testing.T) {
	svc := lines.New()
	var b model.Board
	for row := 0; row < model.BoardSize; row++ {
		fillRow(&b, row, model.CellPlayer)
	}
	// Full board: 5 rows, 5 cols, 2 diagonals
	got := svc.AllLines(b)
	require.Len(t, got, 12)

	wantKinds := []model.LineKind{
		model.LineHorizontal, model.LineHorizontal, model.LineHorizontal,
		model.LineHorizontal, model.LineHorizontal,
		model.LineVertical, model.LineVertical, model.LineVertical,
		model.LineVertical, model.LineVertical,
		model.LineDiagonalMain, model.LineDiagonalAnti,
	}
	for i, line := range got {
		assert.Equal(t, wantKinds[i], line.Kind)
	}
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 4, got[4].Index)
}

func TestAllLines_IntersectingRowAndColumn(t *testing.T) {
	svc := lines.New()
	var b model.Board
	fillRow(&b, 1, model.CellPlayer)
	fillCol(&b, 3, model.CellComputer)

	got := svc.AllLines(b)
	require.Len(t, got, 2)
	assert.Equal(t, model.LineHorizontal, got[0].Kind)
	assert.Equal(t, model.LineVertical, got[1].Kind)
	assert.Equal(t, 3, got[1].Index)
}

func TestValidateBoard(t *testing.T) {
	svc := lines.New()
	var b model.Board
	assert.True(t, svc.ValidateBoard(b))
	b[0] = model.CellState(9)
	assert.False(t, svc.ValidateBoard(b))
}
