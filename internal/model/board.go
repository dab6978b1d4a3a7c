package model

import "fmt"

// BoardSize is the fixed grid dimension. The game is only defined on 5x5.
const BoardSize = 5

// CellCount is the total number of cells on a board.
const CellCount = BoardSize * BoardSize

// CellState is the occupancy of a single cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellPlayer
	CellComputer
)

// String returns the wire/display name of the cell state.
func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellPlayer:
		return "player"
	case CellComputer:
		return "computer"
	default:
		return "invalid"
	}
}

// Valid reports whether the value is one of the three defined states.
func (c CellState) Valid() bool {
	return c <= CellComputer
}

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds reports whether the position is within the 5x5 grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// IsCenter reports whether the position is the centre cell (2,2).
func (p Position) IsCenter() bool {
	return p.Row == BoardSize/2 && p.Col == BoardSize/2
}

// Display returns the position in 1-based display form, e.g. "(3, 3)".
func (p Position) Display() string {
	return fmt.Sprintf("(%d, %d)", p.Row+1, p.Col+1)
}

// Label returns a human-readable description of the position, e.g.
// "center (3, 3)" or "corner (1, 1)". Used by the scorer's ranked output.
func (p Position) Label() string {
	return p.class() + " " + p.Display()
}

func (p Position) class() string {
	onRowEdge := p.Row == 0 || p.Row == BoardSize-1
	onColEdge := p.Col == 0 || p.Col == BoardSize-1
	switch {
	case p.IsCenter():
		return "center"
	case onRowEdge && onColEdge:
		return "corner"
	case onRowEdge || onColEdge:
		return "edge"
	default:
		return "inner"
	}
}

// Board is a 5x5 grid of cell states stored flat in row-major order.
// It is a value type: copying a Board copies the whole grid, which keeps
// snapshots and move simulation cheap and free of aliasing.
type Board [CellCount]CellState

// At returns the state at (row, col), or CellEmpty if out of bounds.
func (b Board) At(row, col int) CellState {
	if !(Position{Row: row, Col: col}).InBounds() {
		return CellEmpty
	}
	return b[row*BoardSize+col]
}

// Set places a state at (row, col). Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, s CellState) {
	if !(Position{Row: row, Col: col}).InBounds() {
		return
	}
	b[row*BoardSize+col] = s
}

// IsEmptyCell reports whether the cell at (row, col) is in bounds and empty.
func (b Board) IsEmptyCell(row, col int) bool {
	return (Position{Row: row, Col: col}).InBounds() && b[row*BoardSize+col] == CellEmpty
}

// IsFull reports whether every cell is occupied.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	count := 0
	for _, c := range b {
		if c == CellEmpty {
			count++
		}
	}
	return count
}

// EmptyPositions returns all empty positions in row-major order.
func (b Board) EmptyPositions() []Position {
	var empty []Position
	for i, c := range b {
		if c == CellEmpty {
			empty = append(empty, Position{Row: i / BoardSize, Col: i % BoardSize})
		}
	}
	return empty
}

// Fingerprint packs the board into a single uint64, two bits per cell.
// Equal boards produce equal fingerprints, which makes the board usable
// as a cache key.
func (b Board) Fingerprint() uint64 {
	var fp uint64
	for i, c := range b {
		fp |= uint64(c) << (2 * i)
	}
	return fp
}

// Validate reports whether every cell holds a defined state. A Board value
// constructed normally always validates; this guards data deserialised from
// storage or the wire.
func (b Board) Validate() bool {
	for _, c := range b {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// Grid returns the board as nested display strings, row-major. Empty cells
// are rendered as "", player cells as "P" and computer cells as "C".
func (b Board) Grid() [][]string {
	grid := make([][]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		grid[row] = make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			switch b.At(row, col) {
			case CellPlayer:
				grid[row][col] = "P"
			case CellComputer:
				grid[row][col] = "C"
			}
		}
	}
	return grid
}
