package board

import "testing"

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for mask := uint8(0); mask <= 15; mask++ {
		tile := NewTile(mask)
		r := tile.Rotate().Rotate().Rotate().Rotate()
		if r != tile {
			t.Errorf("mask %#x: four rotations gave %#x", mask, uint8(r))
		}
	}
}

func TestRotateCyclesSingleConnection(t *testing.T) {
	// right -> up -> left -> down -> right
	tile := NewTile(0b0001)
	if !tile.Has(DirRight) {
		t.Fatal("expected right connector")
	}

	tile = tile.Rotate()
	if tile != 0b0010 || !tile.Has(DirUp) {
		t.Errorf("after one rotation: got %#x", uint8(tile))
	}

	tile = tile.Rotate()
	if tile != 0b0100 || !tile.Has(DirLeft) {
		t.Errorf("after two rotations: got %#x", uint8(tile))
	}

	tile = tile.Rotate()
	if tile != 0b1000 || !tile.Has(DirDown) {
		t.Errorf("after three rotations: got %#x", uint8(tile))
	}
}

func TestRotateMultiConnection(t *testing.T) {
	tile := NewTile(0b0011) // right+up
	tile = tile.Rotate()
	if tile != 0b0110 {
		t.Errorf("got %#x, want up+left", uint8(tile))
	}
	tile = tile.Rotate()
	if tile != 0b1100 {
		t.Errorf("got %#x, want left+down", uint8(tile))
	}
	tile = tile.Rotate()
	if tile != 0b1001 {
		t.Errorf("got %#x, want down+right", uint8(tile))
	}
}

func TestNewTileMasksUpperBits(t *testing.T) {
	if NewTile(0xFF) != 0x0F {
		t.Errorf("got %#x", uint8(NewTile(0xFF)))
	}
}

func TestDeadEndAndFull(t *testing.T) {
	for _, mask := range []Tile{1, 2, 4, 8} {
		if !mask.IsDeadEnd() {
			t.Errorf("mask %#x should be a dead end", uint8(mask))
		}
	}
	for _, mask := range []Tile{0, 3, 5, 7, 15} {
		if mask.IsDeadEnd() {
			t.Errorf("mask %#x should not be a dead end", uint8(mask))
		}
	}
	if !Tile(15).IsFull() {
		t.Error("mask 15 should be full")
	}
	if Tile(7).IsFull() {
		t.Error("mask 7 should not be full")
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirRight: DirLeft,
		DirLeft:  DirRight,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%d) = %d, want %d", d, got, want)
		}
	}
}
