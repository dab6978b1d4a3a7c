// Package lines detects completed lines on a board. The service is pure and
// stateless; one instance can be shared by every engine.
package lines

import "coopbingo/internal/model"

// Service scans boards for completed lines.
type Service struct{}

// New creates a new line detection service.
func New() *Service {
	return &Service{}
}

// AllLines returns every fully-occupied line on the board, in deterministic
// order: rows top to bottom, then columns left to right, then the main
// diagonal, then the anti diagonal. Occupancy counts regardless of who
// filled each cell.
func (s *Service) AllLines(board model.Board) []model.Line {
	var completed []model.Line
	for row := 0; row < model.BoardSize; row++ {
		if line, ok := s.lineAt(board, model.LineHorizontal, row); ok {
			completed = append(completed, line)
		}
	}
	for col := 0; col < model.BoardSize; col++ {
		if line, ok := s.lineAt(board, model.LineVertical, col); ok {
			completed = append(completed, line)
		}
	}
	if line, ok := s.lineAt(board, model.LineDiagonalMain, 0); ok {
		completed = append(completed, line)
	}
	if line, ok := s.lineAt(board, model.LineDiagonalAnti, 0); ok {
		completed = append(completed, line)
	}
	return completed
}

// CountCompleted returns the number of completed lines without building the
// line descriptions.
func (s *Service) CountCompleted(board model.Board) int {
	return len(s.AllLines(board))
}

// IsComplete reports whether the named line is fully occupied.
func (s *Service) IsComplete(board model.Board, kind model.LineKind, index int) bool {
	_, ok := s.lineAt(board, kind, index)
	return ok
}

// ValidateBoard reports whether every cell holds a defined state.
func (s *Service) ValidateBoard(board model.Board) bool {
	return board.Validate()
}

func (s *Service) lineAt(board model.Board, kind model.LineKind, index int) (model.Line, bool) {
	positions := model.LinePositions(kind, index)
	line := model.Line{Kind: kind, Index: index, Positions: positions}
	for i, p := range positions {
		v := board.At(p.Row, p.Col)
		if v == model.CellEmpty {
			return model.Line{}, false
		}
		line.Values[i] = v
	}
	return line, true
}
