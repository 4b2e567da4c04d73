// Package netplay hosts ZapGrid matches between SSH sessions: lobbies
// with join codes, an authoritative match loop stepping a shared game,
// and a small binary wire protocol for seeds, taps and board snapshots.
package netplay

import "github.com/zapgrid/zapgrid/internal/core"

// PlayerID is an alias to core.PlayerID. Player1 is the lobby host and
// plays the board's left side; Player2 joins and plays the right side.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's SSH connection.
type SessionID string

// MatchID uniquely identifies a running match.
type MatchID string

// MatchMode defines how a match is configured.
type MatchMode int

const (
	// MatchModeSolo is single-player zen on the local terminal.
	MatchModeSolo MatchMode = iota

	// MatchModeVsBot races the built-in bot on a shared board.
	MatchModeVsBot

	// MatchModeOnline pits two SSH sessions against each other.
	MatchModeOnline
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Zen"
	case MatchModeVsBot:
		return "vs Bot"
	case MatchModeOnline:
		return "Online"
	default:
		return "Unknown"
	}
}
