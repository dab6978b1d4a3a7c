package bot

import (
	"coopbingo/internal/model"
)

// Ranker is the slice of the scoring service the greedy strategy uses.
type Ranker interface {
	RankAllMoves(board model.Board) []model.ScoredMove
}

// GreedyStrategy always takes the highest-scored move. Deterministic, so
// ties resolve to the lowest (row, col) per the ranker's ordering.
type GreedyStrategy struct {
	ranker Ranker
}

var _ Strategy = (*GreedyStrategy)(nil)

// NewGreedyStrategy creates a new GreedyStrategy.
func NewGreedyStrategy(ranker Ranker) *GreedyStrategy {
	return &GreedyStrategy{ranker: ranker}
}

// ChooseMove picks the best-ranked empty cell.
func (s *GreedyStrategy) ChooseMove(board model.Board) (model.Position, bool) {
	ranked := s.ranker.RankAllMoves(board)
	if len(ranked) == 0 {
		return model.Position{}, false
	}
	return model.Position{Row: ranked[0].Row, Col: ranked[0].Col}, true
}
