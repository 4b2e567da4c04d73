package game

import "github.com/zapgrid/zapgrid/internal/board"

// BonusKind is something that drops from the top of the board after a
// zap: coins worth points, or a power-up pickup.
type BonusKind int

const (
	BonusCoin1 BonusKind = iota
	BonusCoin2
	BonusCoin5
	BonusBomb
	BonusCross
	BonusArrow
)

// Power-up drop odds, rolled once per zap: 1 in N.
const (
	bombDropOdds  = 5
	crossDropOdds = 3
	arrowDropOdds = 8
)

// Points returns the coin value, 0 for power-ups.
func (k BonusKind) Points() int {
	switch k {
	case BonusCoin1:
		return 1
	case BonusCoin2:
		return 2
	case BonusCoin5:
		return 5
	default:
		return 0
	}
}

// IsPowerUp reports whether the bonus is a pickup rather than a coin.
func (k BonusKind) IsPowerUp() bool {
	return k == BonusBomb || k == BonusCross || k == BonusArrow
}

// PowerUp returns the pickup's power-up kind, PowerNone for coins.
func (k BonusKind) PowerUp() PowerUp {
	switch k {
	case BonusBomb:
		return PowerBomb
	case BonusCross:
		return PowerCross
	case BonusArrow:
		return PowerArrow
	default:
		return PowerNone
	}
}

// bonusDrops decides what falls after a zap. Every zap drops two small
// coins. Wider connections upgrade the haul per side: more than three
// pins adds mid coins, more than six adds big coins. Each power-up then
// gets an independent roll on its own odds.
func bonusDrops(leftPins, rightPins int, rng *board.RNG) []BonusKind {
	drops := []BonusKind{BonusCoin1, BonusCoin1}

	for _, pins := range [2]int{leftPins, rightPins} {
		switch {
		case pins > 6:
			drops = append(drops, BonusCoin1, BonusCoin2, BonusCoin2, BonusCoin2)
			for i := 0; i < pins-6; i++ {
				drops = append(drops, BonusCoin5)
			}
		case pins > 3:
			drops = append(drops, BonusCoin1)
			for i := 0; i < pins-3; i++ {
				drops = append(drops, BonusCoin2)
			}
		}
	}

	if rng.Intn(bombDropOdds) == 0 {
		drops = append(drops, BonusBomb)
	}
	if rng.Intn(crossDropOdds) == 0 {
		drops = append(drops, BonusCross)
	}
	if rng.Intn(arrowDropOdds) == 0 {
		drops = append(drops, BonusArrow)
	}
	return drops
}

// FallingBonus is a drop still in the air. It lands when TicksLeft runs out.
type FallingBonus struct {
	X         int
	Kind      BonusKind
	TicksLeft int
}

// LandedBonus sits on a board cell until a zap's marking claims it:
// left-reachable cells pay the left side, right-reachable the right.
type LandedBonus struct {
	X, Y int
	Kind BonusKind
}
