// Package board implements the tile grid at the heart of ZapGrid: the
// deterministic tile generator, the connection resolver, and the gravity
// engine that clears and refills connected tiles. It contains pure logic
// with no external dependencies so it can be simulated headlessly and
// kept bit-identical across networked peers.
package board

// Direction is a single edge connector flag. A tile's connection set is a
// 4-bit mask of these flags.
type Direction uint8

const (
	DirRight Direction = 1 << 0
	DirUp    Direction = 1 << 1
	DirLeft  Direction = 1 << 2
	DirDown  Direction = 1 << 3
)

// Opposite returns the reciprocal direction, used when checking that two
// neighboring tiles actually connect to each other.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return 0
	}
}

// Delta returns the grid offset of one step in this direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Tile is a 4-bit connection mask: bit0=right, bit1=up, bit2=left, bit3=down.
type Tile uint8

// NewTile clamps the mask to the valid 4-bit range.
func NewTile(mask uint8) Tile {
	return Tile(mask & 0x0F)
}

// Has reports whether the tile carries a connector on the given edge.
func (t Tile) Has(d Direction) bool {
	return uint8(t)&uint8(d) != 0
}

// Rotate returns the tile turned by one 90-degree step: a circular left
// shift of the 4-bit field, mapping right->up->left->down->right.
// Four rotations return the original tile.
func (t Tile) Rotate() Tile {
	r := uint8(t) << 1
	return Tile((r & 0x0F) | (r >> 4))
}

// IsDeadEnd reports whether the tile has exactly one connector.
// The generator biases against these; the bot never rotates them.
func (t Tile) IsDeadEnd() bool {
	switch t {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// IsFull reports whether the tile connects on all four edges.
// Rotating a full cross is a no-op, so the bot skips them too.
func (t Tile) IsFull() bool {
	return t == 0x0F
}
