package game

// PowerUp is a one-shot board weapon a player can hold and arm.
type PowerUp int

const (
	PowerNone PowerUp = iota
	PowerBomb         // clears a window of tiles around the tap
	PowerCross        // turns the tapped tile into a full cross
	PowerArrow        // clears the tapped tile's whole column
)

func (p PowerUp) String() string {
	switch p {
	case PowerBomb:
		return "bomb"
	case PowerCross:
		return "cross"
	case PowerArrow:
		return "arrow"
	default:
		return "none"
	}
}

// Bomb blast half-extents, in cells around the tapped tile (5x5 window).
const (
	bombRadiusX = 2
	bombRadiusY = 2
)

// Inventory tracks which power-ups a player holds and which one, if any,
// is armed. A single Armed slot means two power-ups can never be armed at
// once; arming a second one replaces the first.
type Inventory struct {
	HasBomb  bool
	HasCross bool
	HasArrow bool
	Armed    PowerUp
}

// Grant adds a power-up to the inventory. Holding duplicates is not
// tracked; a second pickup of the same kind is absorbed.
func (inv *Inventory) Grant(p PowerUp) {
	switch p {
	case PowerBomb:
		inv.HasBomb = true
	case PowerCross:
		inv.HasCross = true
	case PowerArrow:
		inv.HasArrow = true
	}
}

// Has reports whether the inventory holds the given power-up.
func (inv *Inventory) Has(p PowerUp) bool {
	switch p {
	case PowerBomb:
		return inv.HasBomb
	case PowerCross:
		return inv.HasCross
	case PowerArrow:
		return inv.HasArrow
	default:
		return false
	}
}

// ToggleArm arms a held power-up, or disarms it when already armed.
// Arming a power-up the player does not hold is a no-op.
func (inv *Inventory) ToggleArm(p PowerUp) {
	if !inv.Has(p) {
		return
	}
	if inv.Armed == p {
		inv.Armed = PowerNone
		return
	}
	inv.Armed = p
}

// ConsumeArmed removes the armed power-up from the inventory and returns
// it. Returns false when nothing is armed.
func (inv *Inventory) ConsumeArmed() (PowerUp, bool) {
	p := inv.Armed
	if p == PowerNone {
		return PowerNone, false
	}
	inv.Armed = PowerNone
	switch p {
	case PowerBomb:
		inv.HasBomb = false
	case PowerCross:
		inv.HasCross = false
	case PowerArrow:
		inv.HasArrow = false
	}
	return p, true
}
