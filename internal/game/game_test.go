package game

import (
	"testing"
	"time"

	"github.com/zapgrid/zapgrid/internal/board"
	"github.com/zapgrid/zapgrid/internal/core"
)

func newTestGame(mode Mode, seed int64) *Game {
	var g *Game
	if mode == ModeVsBot {
		g = NewVsBot()
	} else {
		g = New()
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// stepIdle advances the game n ticks with no input.
func stepIdle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func frameWith(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

// rigZapRow fills the cursor's row with straight pipes and puts a vertical
// pipe under the cursor, so one rotation completes the connection.
func rigZapRow(g *Game) {
	b := g.Board()
	y := g.cursorY
	for x := 0; x < b.Width(); x++ {
		b.SetTile(x, y, 0b0101)
	}
	b.SetTile(g.cursorX, y, 0b1010)
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	if g.Phase() != PhaseWaitingForInput {
		t.Errorf("phase = %v, want waiting", g.Phase())
	}
	st := g.State()
	if st.Score != 0 || st.OpponentScore != 0 || st.GameOver || st.Paused {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if g.Board().Width() != 12 || g.Board().Height() != 10 {
		t.Errorf("board = %dx%d, want 12x10", g.Board().Width(), g.Board().Height())
	}
}

func TestRotateEntersAndLeavesRotationPhase(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	before := g.Board().Tile(g.cursorX, g.cursorY)

	g.Step(frameWith(core.ActionRotate))

	if g.Phase() != PhaseRotatingTile {
		t.Fatalf("phase = %v, want rotating", g.Phase())
	}
	if g.Board().Tile(g.cursorX, g.cursorY) != before.Rotate() {
		t.Error("tile should rotate immediately on tap")
	}
	if g.Board().Marking(g.cursorX, g.cursorY) != board.MarkAnimating {
		t.Error("rotating tile should be marked animating")
	}

	stepIdle(g, g.cfg.Rules.RotateTicks)

	if g.Phase() == PhaseRotatingTile {
		t.Error("rotation window should have expired")
	}
	if g.Board().Marking(g.cursorX, g.cursorY) == board.MarkAnimating {
		t.Error("animating marking should be cleared after rotation")
	}
}

func TestInputIgnoredDuringRotation(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	g.Step(frameWith(core.ActionRotate))
	after := g.Board().Tile(g.cursorX, g.cursorY)

	// Mid-animation taps and cursor moves must not land.
	cx := g.cursorX
	g.Step(frameWith(core.ActionRotate))
	g.Step(frameWith(core.ActionLeft))

	if g.Board().Tile(cx, g.cursorY) != after {
		t.Error("tap during rotation should be dropped")
	}
	if g.cursorX != cx {
		t.Error("cursor should not move during rotation")
	}
}

func TestZapScoresAndRegenerates(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	rigZapRow(g)
	y := g.cursorY

	g.Step(frameWith(core.ActionRotate))
	stepIdle(g, g.cfg.Rules.RotateTicks)

	if g.Phase() != PhaseFreezeZap {
		t.Fatalf("phase = %v, want freeze_zap", g.Phase())
	}
	// One left pin and one right pin, both at multiplier x1; zen pays the
	// single player for both sides.
	if g.State().Score != 2 {
		t.Errorf("score = %d, want 2", g.State().Score)
	}
	if len(g.pendingBonuses) < 2 {
		t.Errorf("pending bonuses = %d, want at least the two base coins", len(g.pendingBonuses))
	}
	if g.Board().MultiplierLeft(y) != 2 || g.Board().MultiplierRight(y) != 2 {
		t.Error("connected row multipliers should bump to x2")
	}

	stepIdle(g, g.cfg.Rules.FreezeZapTicks)

	if g.Phase() != PhaseFallingTiles {
		t.Fatalf("phase = %v, want falling_tiles", g.Phase())
	}
	for x := 0; x < g.Board().Width(); x++ {
		for yy := 0; yy < g.Board().Height(); yy++ {
			if g.Board().Marking(x, yy) != board.MarkNone {
				t.Fatalf("marking at (%d,%d) = %v after zap, want none", x, yy, g.Board().Marking(x, yy))
			}
			if g.Board().Tile(x, yy) == 0 {
				t.Fatalf("empty tile at (%d,%d) after regeneration", x, yy)
			}
		}
	}
	if len(g.falling) < 2 {
		t.Errorf("falling bonuses = %d, want at least 2", len(g.falling))
	}

	stepIdle(g, g.cfg.Rules.FallTicks)
	if g.Phase() == PhaseFallingTiles {
		t.Error("fall window should have expired")
	}
}

func TestRepeatZapsPayMoreOnSameRow(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	for i := 0; i < 2; i++ {
		// Wait out any cascade from the previous regeneration first.
		for n := 0; g.Phase() != PhaseWaitingForInput && n < 10000; n++ {
			stepIdle(g, 1)
		}
		rigZapRow(g)
		g.Step(frameWith(core.ActionRotate))
		stepIdle(g, g.cfg.Rules.RotateTicks)
		stepIdle(g, g.cfg.Rules.FreezeZapTicks)
	}

	// First zap pays 1+1, second pays at least 2+2 on the same row.
	if g.State().Score < 6 {
		t.Errorf("score = %d, want >= 6 after two zaps on the same row", g.State().Score)
	}
}

func TestMouseTapRotatesTappedCell(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	before := g.Board().Tile(2, 3)

	f := core.NewInputFrame()
	f.SetTap(2, 3)
	g.Step(f)

	if g.Board().Tile(2, 3) != before.Rotate() {
		t.Error("tapped cell should rotate")
	}
	if g.animX != 2 || g.animY != 3 {
		t.Errorf("animating cell = (%d,%d), want (2,3)", g.animX, g.animY)
	}
}

func TestOutOfBoundsTapIgnored(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	f := core.NewInputFrame()
	f.SetTap(-1, 99)
	g.Step(f)

	if g.Phase() != PhaseWaitingForInput {
		t.Error("out-of-bounds tap should be a no-op")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Board().Tile(g.cursorX, g.cursorY)
	g.Step(frameWith(core.ActionRotate))
	if g.Board().Tile(g.cursorX, g.cursorY) != before {
		t.Error("input should be ignored while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	for i := 0; i < 50; i++ {
		g.Step(frameWith(core.ActionLeft))
	}
	if g.cursorX != 0 {
		t.Errorf("cursorX = %d, want 0", g.cursorX)
	}
	for i := 0; i < 50; i++ {
		g.Step(frameWith(core.ActionDown))
	}
	if g.cursorY != g.Board().Height()-1 {
		t.Errorf("cursorY = %d, want %d", g.cursorY, g.Board().Height()-1)
	}
}

func TestArmedBombConsumesAndClears(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	g.invLeft.Grant(PowerBomb)

	g.Step(frameWith(core.ActionArmBomb))
	if g.invLeft.Armed != PowerBomb {
		t.Fatal("bomb should be armed")
	}

	g.Step(frameWith(core.ActionRotate))
	if g.Phase() != PhaseFreezeBomb {
		t.Fatalf("phase = %v, want freeze_bomb", g.Phase())
	}
	if g.invLeft.HasBomb || g.invLeft.Armed != PowerNone {
		t.Error("bomb should be consumed on use")
	}

	stepIdle(g, g.cfg.Rules.FreezeBombTicks)
	if g.Phase() != PhaseFallingTiles {
		t.Fatalf("phase = %v, want falling_tiles", g.Phase())
	}
	stepIdle(g, g.cfg.Rules.FallTicks)
	if g.Phase() == PhaseFallingTiles {
		t.Error("fall window should have expired")
	}
}

func TestArmedCrossSetsFullTile(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	g.invLeft.Grant(PowerCross)

	g.Step(frameWith(core.ActionArmCross))
	g.Step(frameWith(core.ActionRotate))

	if got := g.Board().Tile(g.cursorX, g.cursorY); got != 0x0F {
		t.Errorf("tile = %04b, want full cross", got)
	}
	if g.invLeft.HasCross {
		t.Error("cross should be consumed")
	}
}

func TestArmingUnheldPowerIsNoOp(t *testing.T) {
	g := newTestGame(ModeZen, 42)

	g.Step(frameWith(core.ActionArmArrow))
	if g.invLeft.Armed != PowerNone {
		t.Error("arming an unheld power-up should do nothing")
	}
}

func TestVsBotReachingTargetEndsGame(t *testing.T) {
	g := newTestGame(ModeVsBot, 42)
	// Park the bot so it can't interfere.
	g.botDelay = 1 << 30

	g.leftScore = g.cfg.Rules.TargetScore - 1
	rigZapRow(g)

	g.Step(frameWith(core.ActionRotate))
	stepIdle(g, g.cfg.Rules.RotateTicks)

	st := g.State()
	if !st.GameOver {
		t.Fatal("reaching the target score should end the match")
	}
	if g.Winner() != core.Player1 {
		t.Errorf("winner = %v, want player 1", g.Winner())
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, want game_over", g.Phase())
	}
	// The right pin pays the bot's side.
	if st.OpponentScore != 1 {
		t.Errorf("opponent score = %d, want 1", st.OpponentScore)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(ModeVsBot, 42)
	g.botDelay = 1 << 30
	g.leftScore = g.cfg.Rules.TargetScore - 1
	rigZapRow(g)
	g.Step(frameWith(core.ActionRotate))
	stepIdle(g, g.cfg.Rules.RotateTicks)
	if !g.State().GameOver {
		t.Fatal("setup should end the game")
	}

	g.Step(frameWith(core.ActionRestart))

	st := g.State()
	if st.GameOver || st.Score != 0 || st.OpponentScore != 0 {
		t.Errorf("restart should reset the match, got %+v", st)
	}
	if g.Phase() != PhaseWaitingForInput {
		t.Errorf("phase = %v, want waiting", g.Phase())
	}
}

func TestBotEventuallyMoves(t *testing.T) {
	g := newTestGame(ModeVsBot, 42)
	g.cfg.Bot.DelayMinTicks = 1
	g.cfg.Bot.DelayMaxTicks = 1
	g.botDelay = 0

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		g.Step(core.NewInputFrame())
		if g.Phase() != PhaseWaitingForInput {
			return // bot tapped a tile
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("bot never made a move")
}

func TestDeterministicReplay(t *testing.T) {
	script := func(g *Game) {
		moves := []core.Action{
			core.ActionLeft, core.ActionRotate, core.ActionUp, core.ActionRotate,
			core.ActionRight, core.ActionRight, core.ActionRotate, core.ActionDown,
		}
		for _, a := range moves {
			g.Step(frameWith(a))
			stepIdle(g, 200)
		}
	}

	g1 := newTestGame(ModeZen, 1234)
	g2 := newTestGame(ModeZen, 1234)
	script(g1)
	script(g2)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}

	g3 := newTestGame(ModeZen, 4321)
	script(g3)
	if g1.Snapshot().Board == g3.Snapshot().Board {
		t.Error("different seeds should produce different boards")
	}
}

func TestBonusDropTable(t *testing.T) {
	rng := board.NewRNG(1)
	drops := bonusDrops(7, 2, &rng)

	coins := map[BonusKind]int{}
	powerUps := 0
	for _, d := range drops {
		if d.IsPowerUp() {
			powerUps++
			continue
		}
		coins[d]++
	}

	// Base 2 small coins, plus 1 small + 3 mid + 1 big for seven left pins.
	if coins[BonusCoin1] != 3 || coins[BonusCoin2] != 3 || coins[BonusCoin5] != 1 {
		t.Errorf("coin drops = %v, want 3/3/1", coins)
	}
	if powerUps > 3 {
		t.Errorf("power-up drops = %d, want at most 3", powerUps)
	}
}

func TestLandedBonusCollectedByZap(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	y := g.cursorY
	g.landed = append(g.landed, LandedBonus{X: 3, Y: y, Kind: BonusCoin5})
	rigZapRow(g)

	g.Step(frameWith(core.ActionRotate))
	stepIdle(g, g.cfg.Rules.RotateTicks)
	scoreAtZap := g.State().Score
	stepIdle(g, g.cfg.Rules.FreezeZapTicks)

	if g.State().Score != scoreAtZap+5 {
		t.Errorf("score = %d, want %d after collecting the coin", g.State().Score, scoreAtZap+5)
	}
	if len(g.landed) != 0 {
		t.Error("collected bonus should leave the board")
	}
}

func TestLandedPowerUpGrantsInventory(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	y := g.cursorY
	g.landed = append(g.landed, LandedBonus{X: 3, Y: y, Kind: BonusBomb})
	rigZapRow(g)

	g.Step(frameWith(core.ActionRotate))
	stepIdle(g, g.cfg.Rules.RotateTicks)
	stepIdle(g, g.cfg.Rules.FreezeZapTicks)

	if !g.invLeft.HasBomb {
		t.Error("collected bomb pickup should land in the inventory")
	}
}

func TestInventoryToggleAndConsume(t *testing.T) {
	var inv Inventory

	if _, ok := inv.ConsumeArmed(); ok {
		t.Error("empty inventory should have nothing armed")
	}

	inv.Grant(PowerBomb)
	inv.Grant(PowerCross)

	inv.ToggleArm(PowerBomb)
	if inv.Armed != PowerBomb {
		t.Fatal("bomb should be armed")
	}
	// Arming another power-up replaces the first; only one slot exists.
	inv.ToggleArm(PowerCross)
	if inv.Armed != PowerCross {
		t.Fatal("arming cross should replace the armed bomb")
	}
	inv.ToggleArm(PowerCross)
	if inv.Armed != PowerNone {
		t.Fatal("toggling the armed power-up should disarm it")
	}

	inv.ToggleArm(PowerBomb)
	p, ok := inv.ConsumeArmed()
	if !ok || p != PowerBomb {
		t.Fatalf("consumed = %v/%v, want bomb", p, ok)
	}
	if inv.HasBomb {
		t.Error("consuming should remove the power-up")
	}
	if !inv.HasCross {
		t.Error("unrelated power-ups should survive consumption")
	}
}

func TestRenderDrawsBoardAndHUD(t *testing.T) {
	g := newTestGame(ModeZen, 42)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if scr.Row(0) == "" || scr.Get(1, 0) != 'Z' {
		t.Errorf("HUD row = %q, want ZapGrid title", scr.Row(0))
	}
	ox, oy := g.BoardOrigin()
	cell := scr.GetCell(ox+g.cursorX, oy+g.cursorY)
	if cell.Color != core.ColorBrightCyan {
		t.Errorf("cursor cell color = %v, want bright cyan", cell.Color)
	}
}
