package game

import (
	"fmt"

	"github.com/zapgrid/zapgrid/internal/board"
	"github.com/zapgrid/zapgrid/internal/core"
)

// tileRunes maps each connector mask to its box-drawing glyph.
// Bit order: right, up, left, down.
var tileRunes = [16]rune{
	' ', '╺', '╹', '┗', '╸', '━', '┛', '┻',
	'╻', '┏', '┃', '┣', '┓', '┳', '┫', '╋',
}

const hudHeight = 2

// markingColor maps a resolver classification to its display color.
func markingColor(m board.Marking) core.Color {
	switch m {
	case board.MarkOk:
		return core.ColorBrightGreen
	case board.MarkRight:
		return core.ColorOrange
	case board.MarkLeft:
		return core.ColorMagenta
	case board.MarkAnimating:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

func bonusRune(k BonusKind) rune {
	switch k {
	case BonusCoin1:
		return '1'
	case BonusCoin2:
		return '2'
	case BonusCoin5:
		return '5'
	case BonusBomb:
		return 'B'
	case BonusCross:
		return '✚'
	case BonusArrow:
		return '↓'
	default:
		return '?'
	}
}

// BoardOrigin returns the screen position of cell (0, 0). The platform
// uses this to translate mouse clicks into board taps.
func (g *Game) BoardOrigin() (int, int) {
	ox := core.Max((g.screenW-g.b.Width())/2, 4)
	return ox, hudHeight + 1
}

// Render draws the match to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	ox, oy := g.BoardOrigin()
	DrawPins(dst, g.b, ox, oy)
	DrawBoard(dst, g.b, ox, oy, g.cursorX, g.cursorY)
	g.renderBonuses(dst, ox, oy)
	g.renderInventory(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, g.gameOverLine(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) gameOverLine() string {
	if g.mode != ModeVsBot {
		return "Game Over"
	}
	if g.winner == core.Player1 {
		return fmt.Sprintf("You win %d:%d!", g.leftScore, g.rightScore)
	}
	return fmt.Sprintf("Bot wins %d:%d", g.rightScore, g.leftScore)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeVsBot {
		hud = fmt.Sprintf(" ZapGrid VS — You: %d  Bot: %d  First to %d",
			g.leftScore, g.rightScore, g.cfg.Rules.TargetScore)
	} else {
		hud = fmt.Sprintf(" ZapGrid — Score: %d", g.leftScore)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// DrawPins draws the feed-in stubs on both edges plus the per-row score
// multipliers once they grow past x1. Exported so the online match view
// can render a board outside a Game.
func DrawPins(dst *core.Screen, b *board.Board, ox, oy int) {
	rx := b.Width() - 1
	for y := 0; y < b.Height(); y++ {
		if b.Tile(0, y).Has(board.DirLeft) {
			dst.SetColored(ox-1, oy+y, '╼', markingColor(b.Marking(0, y)))
		}
		if b.Tile(rx, y).Has(board.DirRight) {
			dst.SetColored(ox+b.Width(), oy+y, '╾', markingColor(b.Marking(rx, y)))
		}
		if m := b.MultiplierLeft(y); m > 1 {
			dst.DrawTextColored(ox-4, oy+y, fmt.Sprintf("x%d", m), core.ColorCyan)
		}
		if m := b.MultiplierRight(y); m > 1 {
			dst.DrawTextColored(ox+b.Width()+2, oy+y, fmt.Sprintf("x%d", m), core.ColorCyan)
		}
	}
}

// DrawBoard draws the tile grid. The cursor cell overrides the marking
// color so it stays visible on a fully lit board; pass (-1, -1) to draw
// without a cursor.
func DrawBoard(dst *core.Screen, b *board.Board, ox, oy, cursorX, cursorY int) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r := tileRunes[b.Tile(x, y)&0x0F]
			c := markingColor(b.Marking(x, y))
			if x == cursorX && y == cursorY {
				c = core.ColorBrightCyan
				if r == ' ' {
					r = '·'
				}
			}
			dst.SetColored(ox+x, oy+y, r, c)
		}
	}
}

// renderBonuses draws landed pickups on their cells and falling ones at a
// height interpolated from their remaining air time.
func (g *Game) renderBonuses(dst *core.Screen, ox, oy int) {
	for _, lb := range g.landed {
		dst.SetColored(ox+lb.X, oy+lb.Y, bonusRune(lb.Kind), core.ColorBrightYellow)
	}
	total := g.cfg.Rules.BonusFallTicks
	if total <= 0 {
		total = 1
	}
	for _, fb := range g.falling {
		progress := total - fb.TicksLeft
		y := (g.b.Height() - 1) * progress / total
		dst.SetColored(ox+fb.X, oy+y, bonusRune(fb.Kind), core.ColorYellow)
	}
}

// renderInventory draws the player's power-up slots on the bottom line.
func (g *Game) renderInventory(dst *core.Screen) {
	y := dst.Height() - 1
	slots := []struct {
		label string
		power PowerUp
	}{
		{"[1] Bomb", PowerBomb},
		{"[2] Cross", PowerCross},
		{"[3] Arrow", PowerArrow},
	}

	x := 1
	for _, s := range slots {
		c := core.ColorGray
		switch {
		case g.invLeft.Armed == s.power:
			c = core.ColorBrightYellow
		case g.invLeft.Has(s.power):
			c = core.ColorWhite
		}
		dst.DrawTextColored(x, y, s.label, c)
		x += len(s.label) + 2
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
