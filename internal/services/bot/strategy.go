// Package bot chooses computer moves on behalf of hosts that do not supply
// their own.
package bot

import "coopbingo/internal/model"

// Strategy picks a computer move for the given board. The boolean is false
// when the board has no empty cell.
type Strategy interface {
	ChooseMove(board model.Board) (model.Position, bool)
}
