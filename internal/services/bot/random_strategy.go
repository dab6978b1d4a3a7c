package bot

import (
	"coopbingo/internal/dependencies/random"
	"coopbingo/internal/model"
)

// RandomStrategy picks uniformly over the remaining empty cells.
type RandomStrategy struct {
	random random.Random
}

var _ Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy creates a new RandomStrategy.
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove picks a random empty cell.
func (s *RandomStrategy) ChooseMove(board model.Board) (model.Position, bool) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return model.Position{}, false
	}
	return empty[s.random.Intn(len(empty))], true
}
