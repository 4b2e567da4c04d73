package bot

import (
	"testing"
	"time"

	"github.com/zapgrid/zapgrid/internal/board"
)

func TestBotFindsCompletingMove(t *testing.T) {
	// 3x1, almost connected: rotating the blocking middle tile once
	// (up+down -> left+right) completes the path.
	b := board.New(3, 1, 0, 1)
	b.SetTile(0, 0, 0b0101)
	b.SetTile(1, 0, 0b1010)
	b.SetTile(2, 0, 0b0101)

	mv, ok := DetermineNextMove(b)
	if !ok {
		t.Fatal("bot should find a move")
	}
	if mv.X != 1 || mv.Y != 0 || mv.Rotations != 1 {
		t.Errorf("got %+v, want rotate (1,0) once", mv)
	}
}

func TestBotNeverMutatesInput(t *testing.T) {
	b := board.New(8, 6, 10, 42)
	before := b.Clone()

	DetermineNextMove(b)

	if !b.Equal(before) {
		t.Error("evaluation mutated the live board")
	}
}

func TestBotSkipsIneligibleTiles(t *testing.T) {
	// Every mask is 0, a dead end, or a full cross: nothing to rotate.
	masks := []uint8{0, 1, 2, 4, 8, 15}
	b := board.New(6, 4, 0, 1)
	for x := 0; x < 6; x++ {
		for y := 0; y < 4; y++ {
			b.SetTile(x, y, masks[(x+y)%len(masks)])
		}
	}

	if mv, ok := DetermineNextMove(b); ok {
		t.Errorf("expected no move, got %+v", mv)
	}
}

func TestBotReturnsNoneWhenNothingImproves(t *testing.T) {
	b := board.New(3, 1, 0, 1)
	b.SetTile(0, 0, 0b0010)
	b.SetTile(1, 0, 0b0010)
	b.SetTile(2, 0, 0b0010)

	if mv, ok := DetermineNextMove(b); ok {
		t.Errorf("expected no move for dead-end board, got %+v", mv)
	}
}

func TestBotPrefersZapOverPartial(t *testing.T) {
	// Completing the path at (1,0) must beat any partial improvement.
	b := board.New(4, 1, 0, 1)
	b.SetTile(0, 0, 0b0101)
	b.SetTile(1, 0, 0b1010)
	b.SetTile(2, 0, 0b0101)
	b.SetTile(3, 0, 0b0101)

	mv, ok := DetermineNextMove(b)
	if !ok {
		t.Fatal("bot should find a move")
	}
	if mv.X != 1 || mv.Rotations != 1 {
		t.Errorf("got %+v, want the completing rotation at (1,0)", mv)
	}
}

func TestEvaluateAsyncDeliversMove(t *testing.T) {
	b := board.New(3, 1, 0, 1)
	b.SetTile(0, 0, 0b0101)
	b.SetTile(1, 0, 0b1010)
	b.SetTile(2, 0, 0b0101)

	ch := Evaluate(b)

	// The caller may keep playing on the live board meanwhile.
	b.Rotate(0, 0)

	select {
	case mv, ok := <-ch:
		if !ok {
			t.Fatal("expected a move")
		}
		if mv.X != 1 || mv.Rotations != 1 {
			t.Errorf("got %+v", mv)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("bot did not answer in time")
	}
}

func TestEvaluateAsyncClosesOnNoMove(t *testing.T) {
	b := board.New(3, 1, 0, 1)
	b.SetTile(0, 0, 0b0010)
	b.SetTile(1, 0, 0b0010)
	b.SetTile(2, 0, 0b0010)

	select {
	case mv, ok := <-Evaluate(b):
		if ok {
			t.Errorf("expected closed channel, got %+v", mv)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("bot did not answer in time")
	}
}
