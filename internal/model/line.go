package model

// LineKind identifies one of the four families of completable lines.
type LineKind string

const (
	LineHorizontal   LineKind = "horizontal"
	LineVertical     LineKind = "vertical"
	LineDiagonalMain LineKind = "diagonal_main"
	LineDiagonalAnti LineKind = "diagonal_anti"
)

// Line is a fully described board line: its kind, index within the kind
// (row or column number, always 0 for diagonals), and the five positions
// and cell values along it.
type Line struct {
	Kind      LineKind             `json:"kind"`
	Index     int                  `json:"index"`
	Positions [BoardSize]Position  `json:"positions"`
	Values    [BoardSize]CellState `json:"values"`
}

// LinePositions returns the five positions of the line identified by kind
// and index, in left-to-right / top-to-bottom order. The index is ignored
// for diagonals.
func LinePositions(kind LineKind, index int) [BoardSize]Position {
	var ps [BoardSize]Position
	for i := 0; i < BoardSize; i++ {
		switch kind {
		case LineHorizontal:
			ps[i] = Position{Row: index, Col: i}
		case LineVertical:
			ps[i] = Position{Row: i, Col: index}
		case LineDiagonalMain:
			ps[i] = Position{Row: i, Col: i}
		case LineDiagonalAnti:
			ps[i] = Position{Row: i, Col: BoardSize - 1 - i}
		}
	}
	return ps
}

// LineRef names a line without materialising its cells.
type LineRef struct {
	Kind  LineKind
	Index int
}

// LinesThrough returns the lines incident to (row, col): its row, its
// column, the main diagonal when row == col and the anti diagonal when
// row + col == BoardSize - 1. At most four, at least two.
func LinesThrough(row, col int) []LineRef {
	refs := []LineRef{
		{Kind: LineHorizontal, Index: row},
		{Kind: LineVertical, Index: col},
	}
	if row == col {
		refs = append(refs, LineRef{Kind: LineDiagonalMain})
	}
	if row+col == BoardSize-1 {
		refs = append(refs, LineRef{Kind: LineDiagonalAnti})
	}
	return refs
}

// Side says who placed a move.
type Side string

const (
	SidePlayer   Side = "player"
	SideComputer Side = "computer"
)

// Move is one placement in a game's history.
type Move struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Round int  `json:"round"`
	Side  Side `json:"side"`
}
