package game

// Phase is the match state machine. Input is only accepted while waiting;
// every other phase is a timed window that expires into the next step.
type Phase int

const (
	PhaseWaitingForInput Phase = iota
	PhaseRotatingTile
	PhaseFallingTiles
	PhaseFreezeZap
	PhaseFreezeBomb
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForInput:
		return "waiting_for_input"
	case PhaseRotatingTile:
		return "rotating_tile"
	case PhaseFallingTiles:
		return "falling_tiles"
	case PhaseFreezeZap:
		return "freeze_zap"
	case PhaseFreezeBomb:
		return "freeze_bomb"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
