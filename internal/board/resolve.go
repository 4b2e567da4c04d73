package board

// Result summarizes one resolution pass.
type Result struct {
	Found     bool // at least one full left-to-right connection
	LeftPins  int  // left pin rows that ended marked Ok
	RightPins int  // right pin rows that ended marked Ok
}

type bfsItem struct {
	x, y int
	in   Direction // edge through which the connection enters the cell
}

// Resolve recomputes the marking grid and reports connectivity.
//
// Pass order is load-bearing: the right-edge flood runs first so the
// left-edge flood can detect "already reached from the right" at its
// starting pin and upgrade the whole component to Ok.
func (b *Board) Resolve() Result {
	var res Result

	// Reset markings, preserving Animating cells so a tile that is
	// mid-rotation keeps its prior classification visible.
	for i := range b.markings {
		if b.markings[i] != MarkAnimating {
			b.markings[i] = MarkNone
		}
	}

	// Pass 1: flood from every right pin.
	for y := 0; y < b.height; y++ {
		if b.Tile(b.width-1, y).Has(DirRight) {
			b.flood(b.width-1, y, DirRight, MarkRight)
		}
	}

	// Pass 2: flood from every left pin, upgrading to Ok when the pin
	// cell was already reached from the right.
	for y := 0; y < b.height; y++ {
		if b.Tile(0, y).Has(DirLeft) {
			marker := MarkLeft
			if m := b.Marking(0, y); m == MarkRight || m == MarkOk {
				marker = MarkOk
			}
			b.flood(0, y, DirLeft, marker)
		}
	}

	// Pass 3: tally connected pins. A pin counts only when its cell ended
	// up on a full connection (Ok), not merely reachable from its own side.
	for y := 0; y < b.height; y++ {
		if b.Tile(0, y).Has(DirLeft) && b.Marking(0, y) == MarkOk {
			res.Found = true
			res.LeftPins++
		}
		if b.Tile(b.width-1, y).Has(DirRight) && b.Marking(b.width-1, y) == MarkOk {
			res.RightPins++
		}
	}

	return res
}

// flood marks every cell reachable from (cx, cy) with the given marker.
// A step from one cell to its neighbor requires both halves of the link:
// the cell's connector toward the neighbor and the neighbor's reciprocal
// connector. Implemented as an explicit BFS queue so stack depth stays
// bounded regardless of board size.
func (b *Board) flood(cx, cy int, in Direction, marker Marking) {
	if marker == MarkNone || marker == MarkAnimating {
		return
	}

	queue := make([]bfsItem, 0, b.width*b.height)
	queue = append(queue, bfsItem{cx, cy, in})

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if !b.InBounds(item.x, item.y) {
			continue
		}
		// Idempotent re-visit guard.
		if b.Marking(item.x, item.y) == marker {
			continue
		}
		tile := b.Tile(item.x, item.y)
		if !tile.Has(item.in) {
			continue
		}

		b.SetMarking(item.x, item.y, marker)

		if tile.Has(DirLeft) {
			queue = append(queue, bfsItem{item.x - 1, item.y, DirRight})
		}
		if tile.Has(DirUp) {
			queue = append(queue, bfsItem{item.x, item.y - 1, DirDown})
		}
		if tile.Has(DirRight) {
			queue = append(queue, bfsItem{item.x + 1, item.y, DirLeft})
		}
		if tile.Has(DirDown) {
			queue = append(queue, bfsItem{item.x, item.y + 1, DirUp})
		}
	}
}
