package game

import "fmt"

// Snapshot captures the complete match state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Phase      Phase
	LeftScore  int
	RightScore int
	CursorX    int
	CursorY    int
	Falling    int
	Landed     int
	GameOver   bool
	Board      string // hex-encoded board snapshot
}

// Snapshot returns the current match snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Phase:      g.phase,
		LeftScore:  g.leftScore,
		RightScore: g.rightScore,
		CursorX:    g.cursorX,
		CursorY:    g.cursorY,
		Falling:    len(g.falling),
		Landed:     len(g.landed),
		GameOver:   g.gameOver,
		Board:      fmt.Sprintf("%x", g.b.EncodeSnapshot()),
	}
}
