package board

import "testing"

func TestSnapshotRoundTrip(t *testing.T) {
	src := New(12, 10, 3, 42)
	dst := New(12, 10, 3, 7) // different seed, different contents

	if err := dst.ApplySnapshot(src.EncodeSnapshot()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	for x := 0; x < 12; x++ {
		for y := 0; y < 10; y++ {
			if src.Tile(x, y) != dst.Tile(x, y) {
				t.Fatalf("cell (%d,%d) differs after round trip", x, y)
			}
		}
	}
	// Both sides resolve to the same connectivity.
	if src.Resolve() != dst.Resolve() {
		t.Error("resolution differs after snapshot application")
	}
}

func TestSnapshotRejectsMalformed(t *testing.T) {
	b := New(4, 4, 0, 1)
	before := b.Clone()

	cases := map[string][]byte{
		"empty":           {},
		"truncated":       {0, 4, 0},
		"wrong dims":      New(5, 5, 0, 1).EncodeSnapshot(),
		"short payload":   append([]byte{0, 4, 0, 4}, make([]byte, 10)...),
		"oversized mask":  func() []byte { s := b.EncodeSnapshot(); s[4] = 0x20; return s }(),
		"trailing bytes": append(b.EncodeSnapshot(), 0xFF),
	}

	for name, data := range cases {
		if err := b.ApplySnapshot(data); err == nil {
			t.Errorf("%s: expected error", name)
		}
		if !b.Equal(before) {
			t.Fatalf("%s: rejected snapshot mutated the board", name)
		}
	}
}
