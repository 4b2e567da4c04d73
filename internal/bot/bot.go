// Package bot implements the computer opponent: a brute-force evaluator
// that trials every meaningful single-tile rotation on a private copy of
// the board and picks the highest-scoring one.
package bot

import "github.com/zapgrid/zapgrid/internal/board"

// Move is a recommendation: rotate the tile at (X, Y) Rotations times.
type Move struct {
	X, Y      int
	Rotations int
}

// DetermineNextMove finds the best single-tile rotation. The board passed
// in is never mutated; all evaluation happens on clones. Returns false
// when no candidate beats the current board (nothing worth rotating).
func DetermineNextMove(b *board.Board) (Move, bool) {
	var best Move
	bestScore := 0
	found := false

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			tile := b.Tile(x, y)

			// Dead ends and full crosses can't improve by rotating:
			// a single connector never bridges two sides on its own,
			// and a full cross is rotation-invariant.
			if tile == 0 || tile.IsDeadEnd() || tile.IsFull() {
				continue
			}

			sim := b.Clone()
			for rot := 1; rot <= 3; rot++ {
				sim.Rotate(x, y)
				score := evaluate(sim)
				if score > bestScore {
					bestScore = score
					best = Move{X: x, Y: y, Rotations: rot}
					found = true
				}
			}
		}
	}

	return best, found
}

// evaluate scores a candidate board. A completed connection dominates:
// two points per Ok cell. Otherwise progress toward the right edge counts
// one point per Right cell, plus three for each right pin already wired.
func evaluate(b *board.Board) int {
	res := b.Resolve()
	score := 0

	if res.Found {
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if b.Marking(x, y) == board.MarkOk {
					score += 2
				}
			}
		}
		return score
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Marking(x, y) != board.MarkRight {
				continue
			}
			score++
			if x == b.Width()-1 && b.Tile(x, y).Has(board.DirRight) {
				score += 3
			}
		}
	}
	return score
}

// Evaluate runs DetermineNextMove off the caller's goroutine against a
// snapshot taken before this function returns. The result arrives on the
// returned channel; a closed channel without a value means no move. The
// caller is free to keep mutating its board while evaluation runs, and to
// discard the result if the match has moved on.
func Evaluate(b *board.Board) <-chan Move {
	snapshot := b.Clone()
	out := make(chan Move, 1)
	go func() {
		defer close(out)
		if mv, ok := DetermineNextMove(snapshot); ok {
			out <- mv
		}
	}()
	return out
}
