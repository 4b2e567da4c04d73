package board

// Marking classifies a cell after a resolution pass.
type Marking uint8

const (
	MarkNone      Marking = iota
	MarkLeft              // reachable from a left pin only
	MarkRight             // reachable from a right pin only
	MarkOk                // part of a full left-to-right connection
	MarkAnimating         // mid-rotation, excluded from the resolver's reset
)

func (m Marking) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkLeft:
		return "left"
	case MarkRight:
		return "right"
	case MarkOk:
		return "ok"
	case MarkAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Default board parameters.
const (
	DefaultWidth              = 12
	DefaultHeight             = 10
	DefaultMissingLinkPercent = 3
)

// Board owns the tile matrix, the per-cell markings, the per-row score
// multipliers and the seeded generator. Dimensions are fixed at
// construction; only cell contents change afterwards.
//
// Storage is row-major: index = y*width + x, with x the column (0 at the
// left edge) and y the row (0 at the top). This convention is applied
// uniformly, including in the gravity and bomb loops.
type Board struct {
	width  int
	height int

	tiles    []Tile
	markings []Marking

	// Per-row score multipliers, one per side. Reset to 1 on Reset,
	// monotonically non-decreasing during a match.
	multLeft  []int
	multRight []int

	rng RNG

	// Generator bias state.
	missingLinkPercent int
	generated          int
	deadEnds           int
}

// New creates a board and fills it with generated tiles.
func New(width, height, missingLinkPercent int, seed uint64) *Board {
	b := &Board{
		width:     width,
		height:    height,
		tiles:     make([]Tile, width*height),
		markings:  make([]Marking, width*height),
		multLeft:  make([]int, height),
		multRight: make([]int, height),
		rng:       NewRNG(seed),
	}
	b.Reset(missingLinkPercent)
	return b
}

// NewDefault creates a 12x10 board with the standard missing-link ratio.
func NewDefault(seed uint64) *Board {
	return New(DefaultWidth, DefaultHeight, DefaultMissingLinkPercent, seed)
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) idx(x, y int) int {
	return y*b.width + x
}

// Tile returns the tile at (x, y). Out-of-bounds reads return the empty mask.
func (b *Board) Tile(x, y int) Tile {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.tiles[b.idx(x, y)]
}

// SetTile overrides the mask at (x, y). Used by the cross power-up and by
// snapshot application; the caller is responsible for re-resolving.
// Out-of-bounds coordinates are a no-op.
func (b *Board) SetTile(x, y int, mask uint8) {
	if !b.InBounds(x, y) {
		return
	}
	b.tiles[b.idx(x, y)] = NewTile(mask)
}

// Marking returns the cell's classification from the last resolution pass.
func (b *Board) Marking(x, y int) Marking {
	if !b.InBounds(x, y) {
		return MarkNone
	}
	return b.markings[b.idx(x, y)]
}

// SetMarking sets a cell's classification. Out-of-bounds is a no-op.
func (b *Board) SetMarking(x, y int, m Marking) {
	if !b.InBounds(x, y) {
		return
	}
	b.markings[b.idx(x, y)] = m
}

// Rotate turns the tile at (x, y) by one step. Out-of-bounds taps are
// ignored so remote or replayed input can never fault the simulation.
func (b *Board) Rotate(x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.idx(x, y)
	b.tiles[i] = b.tiles[i].Rotate()
}

// MultiplierLeft returns the left-side multiplier for a row.
func (b *Board) MultiplierLeft(y int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.multLeft[y]
}

// MultiplierRight returns the right-side multiplier for a row.
func (b *Board) MultiplierRight(y int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	return b.multRight[y]
}

// BumpMultiplierLeft increments the left-side multiplier for a row.
func (b *Board) BumpMultiplierLeft(y int) {
	if y >= 0 && y < b.height {
		b.multLeft[y]++
	}
}

// BumpMultiplierRight increments the right-side multiplier for a row.
func (b *Board) BumpMultiplierRight(y int) {
	if y >= 0 && y < b.height {
		b.multRight[y]++
	}
}

// NewElement draws the next tile mask in [1,15] from the seeded stream.
//
// The generator biases against dead-end tiles: once the running ratio of
// generated dead-ends exceeds the configured missing-link percentage, the
// draw is resampled until it lands on a multi-connection mask. This is a
// soft bias, not a hard cap; short bursts of dead-ends remain possible.
func (b *Board) NewElement() Tile {
	k := Tile(b.rng.Intn(15) + 1)
	b.generated++

	if b.generated > 0 && (100*b.deadEnds/b.generated) > b.missingLinkPercent {
		for k.IsDeadEnd() {
			k = Tile(b.rng.Intn(15) + 1)
		}
	}

	if k.IsDeadEnd() {
		b.deadEnds++
	}
	return k
}

// Reset regenerates every cell, clears all markings and resets both
// multiplier columns to 1. The generator bias counters restart as well.
func (b *Board) Reset(missingLinkPercent int) {
	b.missingLinkPercent = missingLinkPercent
	b.generated = 0
	b.deadEnds = 0

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.tiles[b.idx(x, y)] = b.NewElement()
			b.markings[b.idx(x, y)] = MarkNone
		}
		b.multLeft[y] = 1
		b.multRight[y] = 1
	}
}

// Clone returns a deep copy sharing no state with the original, including
// an independent copy of the RNG. The bot evaluates candidate moves on a
// clone so the live board is never touched.
func (b *Board) Clone() *Board {
	c := &Board{
		width:              b.width,
		height:             b.height,
		tiles:              make([]Tile, len(b.tiles)),
		markings:           make([]Marking, len(b.markings)),
		multLeft:           make([]int, len(b.multLeft)),
		multRight:          make([]int, len(b.multRight)),
		rng:                b.rng,
		missingLinkPercent: b.missingLinkPercent,
		generated:          b.generated,
		deadEnds:           b.deadEnds,
	}
	copy(c.tiles, b.tiles)
	copy(c.markings, b.markings)
	copy(c.multLeft, b.multLeft)
	copy(c.multRight, b.multRight)
	return c
}

// Equal reports structural equality of tiles and markings. Used by tests
// to verify that evaluation never mutates a live board.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] || b.markings[i] != other.markings[i] {
			return false
		}
	}
	return true
}
