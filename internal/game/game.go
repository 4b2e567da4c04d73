// Package game implements the ZapGrid match loop: a grid of rotatable
// pipe tiles where players wire the board's left edge to its right edge.
// Completed connections zap away, score with per-row multipliers and drop
// bonus coins and power-ups; in versus mode a bot races the player on the
// same board.
package game

import (
	"github.com/zapgrid/zapgrid/internal/board"
	"github.com/zapgrid/zapgrid/internal/bot"
	"github.com/zapgrid/zapgrid/internal/config"
	"github.com/zapgrid/zapgrid/internal/core"
	"github.com/zapgrid/zapgrid/internal/registry"
)

// Mode represents the match ruleset.
type Mode string

const (
	ModeZen    Mode = "zen"    // single player, endless
	ModeVsBot  Mode = "vsbot"  // race the bot to the target score
	ModeVersus Mode = "versus" // race a remote player, driven by the netplay layer
)

// Game implements the platform game interface for all ZapGrid modes.
type Game struct {
	mode Mode
	cfg  config.ZapConfig

	b    *board.Board
	tick uint64

	phase      Phase
	phaseTicks int

	cursorX, cursorY int
	animX, animY     int

	leftScore  int
	rightScore int
	winner     core.PlayerID

	invLeft  Inventory
	invRight Inventory

	// Drops decided at zap detection, spawned when the freeze expires.
	pendingBonuses []BonusKind

	bombPending    bool
	bombX, bombY   int
	bombRX, bombRY int

	// Bonuses and the bot run on their own streams so cosmetic and
	// timing randomness never desyncs the board RNG between peers.
	bonusRNG board.RNG
	falling  []FallingBonus
	landed   []LandedBonus

	botRNG     board.RNG
	botDelay   int
	botPending <-chan bot.Move

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// Package-level knobs the CLI sets before creating a game.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new zen mode game.
func New() *Game {
	return &Game{mode: ModeZen}
}

// NewVsBot creates a new versus-bot game.
func NewVsBot() *Game {
	return &Game{mode: ModeVsBot}
}

// NewVersus creates a two-player game with no bot. The netplay layer owns
// the second player's input; this mode is not registered for local play.
func NewVersus() *Game {
	return &Game{mode: ModeVersus}
}

func init() {
	registry.Register("zapgrid", func() registry.Game {
		return New()
	})
	registry.Register("zapgrid_vsbot", func() registry.Game {
		return NewVsBot()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeVsBot:
		return "zapgrid_vsbot"
	case ModeVersus:
		return "zapgrid_versus"
	default:
		return "zapgrid"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeVsBot:
		return "ZapGrid (VS Bot)"
	case ModeVersus:
		return "ZapGrid (Online)"
	default:
		return "ZapGrid"
	}
}

// Reset initializes/restarts the match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" && config.ValidPreset(difficultyPreset) {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	seed := uint64(rc.Seed)
	g.b = board.New(cfg.Board.Width, cfg.Board.Height, cfg.Board.MissingLinkPercent, seed)
	g.bonusRNG = board.NewRNG(seed ^ 0x9e3779b97f4a7c15)
	g.botRNG = board.NewRNG(seed ^ 0xda942042e4dd58b5)

	g.tick = 0
	g.phase = PhaseWaitingForInput
	g.phaseTicks = 0
	g.cursorX = cfg.Board.Width / 2
	g.cursorY = cfg.Board.Height / 2
	g.animX, g.animY = 0, 0
	g.leftScore, g.rightScore = 0, 0
	g.winner = 0
	g.invLeft = Inventory{}
	g.invRight = Inventory{}
	g.pendingBonuses = nil
	g.bombPending = false
	g.falling = nil
	g.landed = nil
	g.botPending = nil
	g.gameOver = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	if g.mode == ModeVsBot {
		g.scheduleBot()
	}
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    int64(g.bonusRNG.Next()),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.stepBonuses()

	switch g.phase {
	case PhaseWaitingForInput:
		g.stepWaiting(in)
	case PhaseRotatingTile:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.b.SetMarking(g.animX, g.animY, board.MarkNone)
			g.checkAndTransition()
		}
	case PhaseFallingTiles:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.checkAndTransition()
		}
	case PhaseFreezeZap:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.doZap()
		}
	case PhaseFreezeBomb:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.doBomb()
		}
	}

	return core.StepResult{State: g.State()}
}

// stepWaiting handles cursor movement, power-up arming and taps. The bot
// only gets a turn if the player's input left the match still waiting.
func (g *Game) stepWaiting(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		if g.cursorY > 0 {
			g.cursorY--
		}
	case in.Has(core.ActionDown):
		if g.cursorY < g.b.Height()-1 {
			g.cursorY++
		}
	case in.Has(core.ActionLeft):
		if g.cursorX > 0 {
			g.cursorX--
		}
	case in.Has(core.ActionRight):
		if g.cursorX < g.b.Width()-1 {
			g.cursorX++
		}
	}

	if in.Has(core.ActionArmBomb) {
		g.invLeft.ToggleArm(PowerBomb)
	}
	if in.Has(core.ActionArmCross) {
		g.invLeft.ToggleArm(PowerCross)
	}
	if in.Has(core.ActionArmArrow) {
		g.invLeft.ToggleArm(PowerArrow)
	}

	switch {
	case in.HasTap:
		g.tap(core.Player1, in.TapX, in.TapY)
	case in.Has(core.ActionRotate):
		g.tap(core.Player1, g.cursorX, g.cursorY)
	}

	if g.mode == ModeVsBot && g.phase == PhaseWaitingForInput {
		g.stepBot()
	}
}

// Tap applies a tap from the given player, whether it came from the local
// keyboard, a mouse click or a remote peer. Taps outside the input phase
// or outside the board are dropped.
func (g *Game) Tap(player core.PlayerID, x, y int) {
	g.tap(player, x, y)
}

func (g *Game) tap(player core.PlayerID, x, y int) {
	if g.phase != PhaseWaitingForInput || !g.b.InBounds(x, y) {
		return
	}
	if p, ok := g.inventory(player).ConsumeArmed(); ok {
		g.usePower(p, x, y)
		return
	}
	g.b.Rotate(x, y)
	g.startRotation(x, y)
}

// startRotation marks the tile as animating and opens the rotation window.
// The marking keeps the resolver from classifying a tile that is visually
// still turning.
func (g *Game) startRotation(x, y int) {
	g.animX, g.animY = x, y
	g.b.SetMarking(x, y, board.MarkAnimating)
	g.phase = PhaseRotatingTile
	g.phaseTicks = g.cfg.Rules.RotateTicks
}

func (g *Game) usePower(p PowerUp, x, y int) {
	switch p {
	case PowerBomb:
		g.bombPending = true
		g.bombX, g.bombY = x, y
		g.bombRX, g.bombRY = bombRadiusX, bombRadiusY
		g.phase = PhaseFreezeBomb
		g.phaseTicks = g.cfg.Rules.FreezeBombTicks
	case PowerArrow:
		g.bombPending = true
		g.bombX, g.bombY = x, y
		g.bombRX, g.bombRY = 0, g.b.Height()
		g.phase = PhaseFreezeBomb
		g.phaseTicks = g.cfg.Rules.FreezeBombTicks
	case PowerCross:
		g.b.SetTile(x, y, 0x0F)
		g.checkAndTransition()
	}
}

func (g *Game) doBomb() {
	if g.bombPending {
		g.b.BombClear(g.bombX, g.bombY, g.bombRX, g.bombRY)
		g.bombPending = false
	}
	g.phase = PhaseFallingTiles
	g.phaseTicks = g.cfg.Rules.FallTicks
}

// checkAndTransition resolves the board after a rotation, fall or cross.
// No connection hands control back to the players; a connection scores,
// decides the bonus drops and opens the zap freeze window. Cascades come
// for free: the fall phase ends back here.
func (g *Game) checkAndTransition() {
	res := g.b.Resolve()
	if !res.Found {
		g.phase = PhaseWaitingForInput
		if g.mode == ModeVsBot {
			g.scheduleBot()
		}
		return
	}

	g.applyScores()
	g.pendingBonuses = bonusDrops(res.LeftPins, res.RightPins, &g.bonusRNG)
	g.phase = PhaseFreezeZap
	g.phaseTicks = g.cfg.Rules.FreezeZapTicks
	g.checkTarget()
}

// applyScores pays out each connected pin row at its current multiplier,
// then bumps the multiplier so repeat connections on the same row pay
// more. Left pins pay the left side, right pins the right side; in zen
// there is only one player and both sides pay them.
func (g *Game) applyScores() {
	rx := g.b.Width() - 1
	for y := 0; y < g.b.Height(); y++ {
		if g.b.Tile(0, y).Has(board.DirLeft) && g.b.Marking(0, y) == board.MarkOk {
			g.addScore(core.Player1, g.b.MultiplierLeft(y))
			g.b.BumpMultiplierLeft(y)
		}
		if g.b.Tile(rx, y).Has(board.DirRight) && g.b.Marking(rx, y) == board.MarkOk {
			g.addScore(g.rightOwner(), g.b.MultiplierRight(y))
			g.b.BumpMultiplierRight(y)
		}
	}
}

func (g *Game) addScore(side core.PlayerID, pts int) {
	if g.mode == ModeZen {
		g.leftScore += pts
		return
	}
	if side == core.Player2 {
		g.rightScore += pts
	} else {
		g.leftScore += pts
	}
}

// rightOwner is the side paid by right pins and right-marked bonuses.
func (g *Game) rightOwner() core.PlayerID {
	if g.mode == ModeZen {
		return core.Player1
	}
	return core.Player2
}

func (g *Game) checkTarget() {
	if g.mode == ModeZen || g.gameOver {
		return
	}
	target := g.cfg.Rules.TargetScore
	if g.leftScore < target && g.rightScore < target {
		return
	}
	g.gameOver = true
	g.phase = PhaseGameOver
	if g.leftScore >= g.rightScore {
		g.winner = core.Player1
	} else {
		g.winner = core.Player2
	}
}

// doZap burns the completed connection: landed bonuses on connected cells
// are claimed first, then the Ok tiles clear and the columns settle with
// fresh tiles. All markings reset so stale colors never survive the fall.
func (g *Game) doZap() {
	g.b.Resolve()
	g.collectLanded()
	g.b.ClearAndRegenerate()
	for y := 0; y < g.b.Height(); y++ {
		for x := 0; x < g.b.Width(); x++ {
			g.b.SetMarking(x, y, board.MarkNone)
		}
	}
	g.spawnBonuses()
	g.checkTarget()
	if g.gameOver {
		return
	}
	g.phase = PhaseFallingTiles
	g.phaseTicks = g.cfg.Rules.FallTicks
}

// collectLanded claims landed bonuses by the zap's markings: cells wired
// to the left edge pay the left side, cells wired to the right edge pay
// the right side. Unreached bonuses stay on the board.
func (g *Game) collectLanded() {
	kept := g.landed[:0]
	for _, lb := range g.landed {
		switch g.b.Marking(lb.X, lb.Y) {
		case board.MarkOk, board.MarkLeft:
			g.award(core.Player1, lb.Kind)
		case board.MarkRight:
			g.award(g.rightOwner(), lb.Kind)
		default:
			kept = append(kept, lb)
		}
	}
	g.landed = kept
}

func (g *Game) award(side core.PlayerID, k BonusKind) {
	if k.IsPowerUp() {
		g.inventory(side).Grant(k.PowerUp())
		return
	}
	g.addScore(side, k.Points())
}

func (g *Game) spawnBonuses() {
	for _, k := range g.pendingBonuses {
		g.falling = append(g.falling, FallingBonus{
			X:         g.bonusRNG.Intn(g.b.Width()),
			Kind:      k,
			TicksLeft: g.cfg.Rules.BonusFallTicks,
		})
	}
	g.pendingBonuses = nil
}

// stepBonuses advances falling drops and lands the ones that ran out of
// air time. Landing stacks bottom-up within a column; a full column
// swallows the drop.
func (g *Game) stepBonuses() {
	kept := g.falling[:0]
	for _, fb := range g.falling {
		fb.TicksLeft--
		if fb.TicksLeft > 0 {
			kept = append(kept, fb)
			continue
		}
		g.landBonus(fb)
	}
	g.falling = kept
}

func (g *Game) landBonus(fb FallingBonus) {
	y := g.b.Height() - 1
	for y >= 0 && g.landedAt(fb.X, y) {
		y--
	}
	if y < 0 {
		return
	}
	g.landed = append(g.landed, LandedBonus{X: fb.X, Y: y, Kind: fb.Kind})
}

func (g *Game) landedAt(x, y int) bool {
	for _, lb := range g.landed {
		if lb.X == x && lb.Y == y {
			return true
		}
	}
	return false
}

func (g *Game) inventory(p core.PlayerID) *Inventory {
	if p == core.Player2 {
		return &g.invRight
	}
	return &g.invLeft
}

// scheduleBot picks the bot's next reaction delay from its own stream.
func (g *Game) scheduleBot() {
	lo := g.cfg.Bot.DelayMinTicks
	span := g.cfg.Bot.DelayMaxTicks - lo + 1
	if span < 1 {
		span = 1
	}
	g.botDelay = lo + g.botRNG.Intn(span)
}

// stepBot drives the opponent: wait out the reaction delay, kick off an
// async evaluation, then apply the move when it arrives. A closed channel
// means nothing was worth rotating; the bot re-arms and looks again later.
func (g *Game) stepBot() {
	if g.botPending != nil {
		select {
		case mv, ok := <-g.botPending:
			g.botPending = nil
			if ok {
				g.applyBotMove(mv)
			} else {
				g.scheduleBot()
			}
		default:
		}
		return
	}
	if g.botDelay > 0 {
		g.botDelay--
		return
	}
	g.botPending = bot.Evaluate(g.b)
}

func (g *Game) applyBotMove(mv bot.Move) {
	if !g.b.InBounds(mv.X, mv.Y) {
		g.scheduleBot()
		return
	}
	for i := 0; i < mv.Rotations; i++ {
		g.b.Rotate(mv.X, mv.Y)
	}
	g.startRotation(mv.X, mv.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:    g.leftScore,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.mode != ModeZen {
		s.OpponentScore = g.rightScore
	}
	return s
}

// StepMulti advances the match using input from both players. The second
// player's taps and arm toggles land before the tick runs; everything
// else about the frame belongs to the first player.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	p2 := in.Player2()
	if g.phase == PhaseWaitingForInput && !g.paused && !g.gameOver {
		if p2.Has(core.ActionArmBomb) {
			g.invRight.ToggleArm(PowerBomb)
		}
		if p2.Has(core.ActionArmCross) {
			g.invRight.ToggleArm(PowerCross)
		}
		if p2.Has(core.ActionArmArrow) {
			g.invRight.ToggleArm(PowerArrow)
		}
		if p2.HasTap {
			g.tap(core.Player2, p2.TapX, p2.TapY)
		}
	}
	return g.Step(in.Player1())
}

// IsGameOver reports whether the match has ended.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Score1 returns the left side's score.
func (g *Game) Score1() int {
	return g.leftScore
}

// Score2 returns the right side's score.
func (g *Game) Score2() int {
	return g.rightScore
}

// BoardSnapshot returns the board's wire encoding for netplay broadcast.
func (g *Game) BoardSnapshot() []byte {
	return g.b.EncodeSnapshot()
}

// Board exposes the live board for the netplay layer and tests.
func (g *Game) Board() *board.Board {
	return g.b
}

// Phase returns the current match phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Winner returns the winning side once the match is over, 0 otherwise.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}
