// Package suggest turns the scorer's rankings into move advice.
package suggest

import (
	"coopbingo/internal/model"
	"coopbingo/internal/services/scoring"
)

// maxAlternatives caps how many runner-up moves a suggestion carries.
const maxAlternatives = 3

// Scorer is the slice of the scoring service the advisor uses.
type Scorer interface {
	RankAllMoves(board model.Board) []model.ScoredMove
	MoveValue(board model.Board, row, col int) float64
}

var _ Scorer = (*scoring.Service)(nil)

// Service produces suggestions from a scorer's rankings.
type Service struct {
	scorer  Scorer
	weights scoring.Weights
}

// New creates a suggestion service. The weights must match the scorer's so
// that confidence grading compares score gaps against the same scale the
// scores were produced on.
func New(scorer Scorer, weights scoring.Weights) *Service {
	return &Service{
		scorer:  scorer,
		weights: weights,
	}
}

// BestSuggestion returns the highest-valued move with up to three
// alternatives and a confidence grade, or nil when the board is full.
func (s *Service) BestSuggestion(board model.Board) *model.Suggestion {
	ranked := s.scorer.RankAllMoves(board)
	if len(ranked) == 0 {
		return nil
	}

	suggestion := &model.Suggestion{
		Best:       ranked[0],
		Confidence: s.confidence(ranked),
	}
	for _, m := range ranked[1:] {
		if len(suggestion.Alternatives) == maxAlternatives {
			break
		}
		suggestion.Alternatives = append(suggestion.Alternatives, m)
	}
	return suggestion
}

// confidence grades the gap between the top two candidates. A lone
// candidate is High: the move is forced, but nothing confirms it is good.
func (s *Service) confidence(ranked []model.ScoredMove) model.Confidence {
	if len(ranked) == 1 {
		return model.ConfidenceHigh
	}
	gap := ranked[0].Score - ranked[1].Score
	switch {
	case gap >= s.weights.Complete:
		return model.ConfidenceVeryHigh
	case gap >= s.weights.Cooperative:
		return model.ConfidenceHigh
	case gap >= s.weights.Potential:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
