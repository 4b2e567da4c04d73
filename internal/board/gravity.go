package board

// ColumnClearCounts returns, per column, how many cells are currently
// marked Ok. The renderer derives its fall animations from this alone,
// so the shift performed by ClearAndRegenerate must match it exactly.
// That is the synchronization contract between simulation and display.
func (b *Board) ColumnClearCounts() []int {
	counts := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.Marking(x, y) == MarkOk {
				counts[x]++
			}
		}
	}
	return counts
}

// ClearAndRegenerate removes every cell marked Ok, lets the survivors in
// each column fall to the bottom, and generates fresh tiles for the
// vacated rows at the top. Dimensions never change.
func (b *Board) ClearAndRegenerate() {
	for x := 0; x < b.width; x++ {
		b.settleColumn(x, func(y int) bool {
			return b.Marking(x, y) != MarkOk
		})
	}
}

// BombClear unconditionally clears a rectangular window around the center
// cell, clipped to the grid, then applies the same per-column shift and
// refill as a regular clear. An out-of-bounds center is a no-op.
func (b *Board) BombClear(cx, cy, rx, ry int) {
	if !b.InBounds(cx, cy) {
		return
	}

	x0 := max(cx-rx, 0)
	x1 := min(cx+rx+1, b.width)
	y0 := max(cy-ry, 0)
	y1 := min(cy+ry+1, b.height)

	for x := x0; x < x1; x++ {
		b.settleColumn(x, func(y int) bool {
			return y < y0 || y >= y1
		})
	}
}

// settleColumn keeps the cells for which survives(y) is true, stacked at
// the bottom of column x in their original order, and fills the rows above
// them with generated tiles (top rows generated first).
func (b *Board) settleColumn(x int, survives func(y int) bool) {
	// Collect survivors bottom-up so the bottom-most stays at the bottom.
	survivors := make([]Tile, 0, b.height)
	for y := b.height - 1; y >= 0; y-- {
		if survives(y) {
			survivors = append(survivors, b.tiles[b.idx(x, y)])
		}
	}

	for i, t := range survivors {
		b.tiles[b.idx(x, b.height-1-i)] = t
	}

	numNew := b.height - len(survivors)
	for y := 0; y < numNew; y++ {
		b.tiles[b.idx(x, y)] = b.NewElement()
	}
}
