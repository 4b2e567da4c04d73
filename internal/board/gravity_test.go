package board

import "testing"

func TestClearAndRegenerateShiftsSurvivors(t *testing.T) {
	b := New(3, 3, 0, 99)

	// Connected middle row, identifiable tiles above and below.
	for x := 0; x < 3; x++ {
		b.SetTile(x, 0, 0x0F)   // top row: full cross
		b.SetTile(x, 1, 0b0101) // middle row: left+right, will connect
		b.SetTile(x, 2, 0b0010) // bottom row: up only
	}
	// Avoid the top row forming its own connection for this test.
	b.SetTile(0, 0, 0b0001)
	b.SetTile(2, 0, 0b0100)

	res := b.Resolve()
	if !res.Found || b.Marking(0, 1) != MarkOk {
		t.Fatalf("setup failed: %+v, marking %s", res, b.Marking(0, 1))
	}

	counts := b.ColumnClearCounts()
	for x, c := range counts {
		if c != 1 {
			t.Errorf("column %d clear count = %d, want 1", x, c)
		}
	}

	oldTop := b.Tile(0, 0)
	b.ClearAndRegenerate()

	if b.Width() != 3 || b.Height() != 3 {
		t.Fatal("dimensions changed")
	}
	if b.Tile(0, 1) != oldTop {
		t.Errorf("old top tile should shift down to row 1: got %#x want %#x",
			uint8(b.Tile(0, 1)), uint8(oldTop))
	}
	if b.Tile(0, 2) != 0b0010 {
		t.Error("bottom survivor should stay at the bottom")
	}
	if b.Tile(0, 0) == 0 {
		t.Error("top row should hold a freshly generated tile")
	}
}

func TestClearAndRegenerateReplacesOkTiles(t *testing.T) {
	// Bottom row is a full connection; the up-only tiles above it are the
	// survivors that must fall into the cleared slots.
	b := New(3, 2, 0, 5)
	for x := 0; x < 3; x++ {
		b.SetTile(x, 0, 0b0010)
		b.SetTile(x, 1, 0b0101)
	}
	if res := b.Resolve(); !res.Found {
		t.Fatal("setup: expected connection")
	}

	b.ClearAndRegenerate()

	if b.Width() != 3 || b.Height() != 2 {
		t.Fatal("dimensions changed")
	}
	for x := 0; x < 3; x++ {
		if b.Tile(x, 1) != 0b0010 {
			t.Errorf("column %d: cleared cell holds %04b, want the fallen survivor", x, b.Tile(x, 1))
		}
		if b.Tile(x, 0) == 0 {
			t.Errorf("column %d: top row left empty after regeneration", x)
		}
	}
}

func TestClearAndRegenerateNoOkIsStable(t *testing.T) {
	b := New(4, 4, 0, 11)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			b.SetTile(x, y, 0b0010)
		}
	}
	b.Resolve()
	before := b.Clone()
	b.ClearAndRegenerate()
	if !b.Equal(before) {
		t.Error("clear with no Ok cells should leave tiles untouched")
	}
}

func TestBombClearOutOfBoundsIsNoOp(t *testing.T) {
	b := New(3, 3, 0, 1)
	before := b.Clone()
	b.BombClear(-1, 0, 2, 2)
	b.BombClear(0, 5, 2, 2)
	if !b.Equal(before) {
		t.Error("out-of-bounds bomb center mutated the board")
	}
}

func TestBombClearReplacesWindow(t *testing.T) {
	b := New(5, 5, 0, 42)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b.SetTile(x, y, 0b0010)
		}
	}

	// 3x3 window centered on (2,2). Survivors in affected columns are the
	// cells outside rows 1..3; they fall to the bottom.
	b.BombClear(2, 2, 1, 1)

	if b.Width() != 5 || b.Height() != 5 {
		t.Fatal("dimensions changed")
	}
	for x := 1; x <= 3; x++ {
		// Rows 3 and 4 now hold the two surviving up-only tiles.
		if b.Tile(x, 4) != 0b0010 || b.Tile(x, 3) != 0b0010 {
			t.Errorf("column %d survivors not settled at the bottom", x)
		}
	}
	// Untouched columns keep their contents.
	for y := 0; y < 5; y++ {
		if b.Tile(0, y) != 0b0010 || b.Tile(4, y) != 0b0010 {
			t.Error("columns outside the window should be untouched")
		}
	}
}

func TestBombClearClipsAtEdges(t *testing.T) {
	b := New(4, 4, 0, 13)
	b.BombClear(0, 0, 2, 2) // window clipped to columns 0..2, rows 0..2
	if b.Width() != 4 || b.Height() != 4 {
		t.Fatal("dimensions changed")
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if b.Tile(x, y) == 0 {
				t.Errorf("cell (%d,%d) left empty", x, y)
			}
		}
	}
}

func TestColumnClearCountsMatchMarkings(t *testing.T) {
	b := New(3, 2, 0, 8)
	b.SetMarking(0, 0, MarkOk)
	b.SetMarking(0, 1, MarkOk)
	b.SetMarking(2, 1, MarkOk)

	counts := b.ColumnClearCounts()
	want := []int{2, 0, 1}
	for x := range want {
		if counts[x] != want[x] {
			t.Errorf("column %d: got %d, want %d", x, counts[x], want[x])
		}
	}
}
