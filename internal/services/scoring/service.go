// Package scoring values candidate moves with a deterministic heuristic
// tuned for cooperative line completion.
package scoring

import (
	"sort"

	"coopbingo/internal/model"
)

// InvalidMoveScore is returned for out-of-range or occupied positions.
const InvalidMoveScore float64 = -1

// Weights configures the heuristic terms. Confidence grading in the
// suggestion layer compares score gaps against these same values, so
// degenerate configurations (e.g. Complete < Potential) shift confidence
// labels along with the ranking.
type Weights struct {
	Complete    float64
	Cooperative float64
	Potential   float64
	Center      float64
}

// DefaultWeights returns the standard heuristic weights.
func DefaultWeights() Weights {
	return Weights{
		Complete:    100,
		Cooperative: 50,
		Potential:   10,
		Center:      5,
	}
}

// Config configures a scoring service.
type Config struct {
	Weights Weights
	// CacheCapacity bounds the move-value cache. 0 disables caching.
	CacheCapacity int
}

// DefaultConfig returns the standard scorer configuration.
func DefaultConfig() Config {
	return Config{
		Weights:       DefaultWeights(),
		CacheCapacity: 100,
	}
}

// Service scores candidate moves. It is not safe for concurrent use; each
// engine owns its own instance.
type Service struct {
	weights Weights
	cache   *moveCache
}

// New creates a scoring service from the given configuration.
func New(cfg Config) *Service {
	return &Service{
		weights: cfg.Weights,
		cache:   newMoveCache(cfg.CacheCapacity),
	}
}

// MoveValue returns the heuristic value of placing a mark at (row, col), or
// InvalidMoveScore when the position is out of range or occupied.
//
// For each line through the cell, with f cells filled before the move and
// e cells empty: completing the line (e == 1) earns the completion weight;
// extending a started line earns a cooperation term scaled by how far along
// the line already is, plus a potential term proportional to the post-move
// fill count when the line remains open. The centre cell earns a flat bonus.
func (s *Service) MoveValue(board model.Board, row, col int) float64 {
	if !board.IsEmptyCell(row, col) {
		return InvalidMoveScore
	}
	if v, ok := s.cache.get(board.Fingerprint(), row, col); ok {
		return v
	}

	score := 0.0
	for _, ref := range model.LinesThrough(row, col) {
		filled, empty := s.lineCounts(board, ref)
		if empty == 1 {
			score += s.weights.Complete
		}
		if filled > 0 {
			switch {
			case filled == model.BoardSize-1:
				score += 2 * s.weights.Cooperative
			case filled >= 2:
				score += s.weights.Cooperative
			default:
				score += 0.5 * s.weights.Cooperative
			}
			if empty > 1 {
				score += float64(filled+1) * s.weights.Potential
			}
		}
	}
	if (model.Position{Row: row, Col: col}).IsCenter() {
		score += s.weights.Center
	}

	s.cache.put(board.Fingerprint(), row, col, score)
	return score
}

// RankAllMoves scores every empty cell and returns the candidates sorted by
// score descending, ties broken by row then column ascending.
func (s *Service) RankAllMoves(board model.Board) []model.ScoredMove {
	var ranked []model.ScoredMove
	for _, p := range board.EmptyPositions() {
		ranked = append(ranked, model.ScoredMove{
			Row:   p.Row,
			Col:   p.Col,
			Score: s.MoveValue(board, p.Row, p.Col),
			Label: p.Label(),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Row != ranked[j].Row {
			return ranked[i].Row < ranked[j].Row
		}
		return ranked[i].Col < ranked[j].Col
	})
	return ranked
}

// lineCounts tallies filled and empty cells along a line.
func (s *Service) lineCounts(board model.Board, ref model.LineRef) (filled, empty int) {
	for _, p := range model.LinePositions(ref.Kind, ref.Index) {
		if board.At(p.Row, p.Col) == model.CellEmpty {
			empty++
		} else {
			filled++
		}
	}
	return filled, empty
}
