package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zapgrid/zapgrid/internal/board"
	"github.com/zapgrid/zapgrid/internal/config"
	"github.com/zapgrid/zapgrid/internal/core"
	"github.com/zapgrid/zapgrid/internal/game"
	"github.com/zapgrid/zapgrid/internal/netplay"
)

// OnlineState represents the current state of the online matchmaking flow.
type OnlineState int

const (
	OnlineStateChooseMode    OnlineState = iota // Choose Host or Join
	OnlineStateHostWaiting                      // Hosting, waiting for joiner
	OnlineStateJoinEnterCode                    // Entering join code
	OnlineStateJoinWaiting                      // Waiting to connect to host
	OnlineStateInMatch                          // In active match
	OnlineStateMatchEnded                       // Match has ended
)

// OnlineLobbyModel handles the online matchmaking flow.
type OnlineLobbyModel struct {
	state       OnlineState
	width       int
	height      int
	keyMapper   *KeyMapper
	sessionID   netplay.SessionID
	coordinator *netplay.Coordinator

	// Host state
	lobbyCode string

	// Join state
	joinCodeInput string
	joinError     string

	// Match state
	matchID netplay.MatchID
	side    core.PlayerID
	seed    uint64

	// Result state
	backToMenu bool
	quitting   bool

	// For receiving events from coordinator
	eventChan <-chan netplay.SessionEvent
}

// NewOnlineLobbyModel creates a new online lobby model.
func NewOnlineLobbyModel(
	sessionID netplay.SessionID,
	coordinator *netplay.Coordinator,
	eventChan <-chan netplay.SessionEvent,
	width, height int,
) OnlineLobbyModel {
	return OnlineLobbyModel{
		state:       OnlineStateChooseMode,
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		sessionID:   sessionID,
		coordinator: coordinator,
		eventChan:   eventChan,
	}
}

// Init initializes the lobby model.
func (m OnlineLobbyModel) Init() tea.Cmd {
	return nil
}

// waitForEvent returns a command that waits for coordinator events.
func (m OnlineLobbyModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		if m.eventChan == nil {
			return nil
		}
		evt, ok := <-m.eventChan
		if !ok {
			return nil
		}
		return evt
	}
}

// Update handles messages.
func (m OnlineLobbyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case netplay.LobbyCreatedEvent:
		m.lobbyCode = msg.Code
		m.state = OnlineStateHostWaiting
		return m, m.waitForEvent()
	case netplay.LobbyJoinedEvent:
		m.side = msg.Side
		return m, m.waitForEvent()
	case netplay.LobbyErrorEvent:
		m.joinError = msg.Message
		if m.state == OnlineStateJoinWaiting {
			m.state = OnlineStateJoinEnterCode
		}
		return m, m.waitForEvent()
	case netplay.LobbyPlayerLeftEvent:
		// Joiner backed out; keep hosting
		return m, m.waitForEvent()
	case netplay.MatchStartedEvent:
		m.matchID = msg.MatchID
		m.side = msg.Side
		m.seed = msg.Seed
		m.state = OnlineStateInMatch
		return m, nil // Exit to start the match view
	case netplay.MatchEndedEvent:
		m.state = OnlineStateMatchEnded
		return m, nil
	}
	return m, nil
}

func (m OnlineLobbyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global quit
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case OnlineStateChooseMode:
		return m.handleChooseModeKey(msg)
	case OnlineStateHostWaiting:
		return m.handleHostWaitingKey(msg)
	case OnlineStateJoinEnterCode:
		return m.handleJoinCodeKey(msg)
	case OnlineStateJoinWaiting:
		return m.handleJoinWaitingKey(msg)
	}

	return m, nil
}

func (m OnlineLobbyModel) handleChooseModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "h", "H", "1":
		// Host
		m.coordinator.Send(netplay.CreateLobbyMsg{
			SessionID: m.sessionID,
		})
		return m, m.waitForEvent()
	case "j", "J", "2":
		// Join
		m.state = OnlineStateJoinEnterCode
		m.joinCodeInput = ""
		m.joinError = ""
		return m, nil
	case "esc", "b":
		m.backToMenu = true
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m OnlineLobbyModel) handleHostWaitingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "b":
		// Cancel lobby
		m.coordinator.Send(netplay.CancelLobbyMsg{
			SessionID: m.sessionID,
			Code:      m.lobbyCode,
		})
		m.backToMenu = true
		return m, nil
	case "q":
		// Cancel and quit
		m.coordinator.Send(netplay.CancelLobbyMsg{
			SessionID: m.sessionID,
			Code:      m.lobbyCode,
		})
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m OnlineLobbyModel) handleJoinCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "b":
		m.backToMenu = true
		return m, nil
	case "enter":
		if m.joinCodeInput != "" {
			m.state = OnlineStateJoinWaiting
			m.joinError = ""
			m.coordinator.Send(netplay.JoinLobbyMsg{
				SessionID: m.sessionID,
				Code:      m.joinCodeInput,
			})
			return m, m.waitForEvent()
		}
	case "backspace":
		if m.joinCodeInput != "" {
			m.joinCodeInput = m.joinCodeInput[:len(m.joinCodeInput)-1]
		}
	default:
		// Accept alphanumeric input for code
		if len(key) == 1 && len(m.joinCodeInput) < 6 {
			c := strings.ToUpper(key)
			if (c[0] >= 'A' && c[0] <= 'Z') || (c[0] >= '0' && c[0] <= '9') {
				m.joinCodeInput += c
			}
		}
	}

	return m, nil
}

func (m OnlineLobbyModel) handleJoinWaitingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "b":
		// Leave lobby attempt
		m.coordinator.Send(netplay.LeaveLobbyMsg{
			SessionID: m.sessionID,
			Code:      m.joinCodeInput,
		})
		m.state = OnlineStateJoinEnterCode
		return m, nil
	}

	return m, nil
}

// View renders the current state.
func (m OnlineLobbyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	switch m.state {
	case OnlineStateChooseMode:
		b.WriteString(m.viewChooseMode())
	case OnlineStateHostWaiting:
		b.WriteString(m.viewHostWaiting())
	case OnlineStateJoinEnterCode:
		b.WriteString(m.viewJoinEnterCode())
	case OnlineStateJoinWaiting:
		b.WriteString(m.viewJoinWaiting())
	}

	return b.String()
}

func (m OnlineLobbyModel) viewChooseMode() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("ONLINE MATCH", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose an option:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("[H] Host a match", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("[J] Join a match", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m OnlineLobbyModel) viewHostWaiting() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("HOSTING MATCH", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Share this code with your opponent:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("[ %s ]", m.lobbyCode), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Waiting for player to join...", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Esc: Cancel  |  Q: Quit", m.width))

	return b.String()
}

func (m OnlineLobbyModel) viewJoinEnterCode() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("JOIN MATCH", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter the match code:", m.width))
	b.WriteString("\n\n")

	// Display code input with cursor
	codeDisplay := m.joinCodeInput
	if len(codeDisplay) < 6 {
		codeDisplay += "_"
		codeDisplay += strings.Repeat(" ", 5-len(m.joinCodeInput))
	}
	b.WriteString(centerText(fmt.Sprintf("[ %s ]", codeDisplay), m.width))
	b.WriteString("\n")

	if m.joinError != "" {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Error: %s", m.joinError), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Connect  |  Esc: Back", m.width))

	return b.String()
}

func (m OnlineLobbyModel) viewJoinWaiting() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CONNECTING", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Joining match: %s", m.joinCodeInput), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Please wait...", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Esc: Cancel", m.width))

	return b.String()
}

// State returns the current online state.
func (m OnlineLobbyModel) State() OnlineState {
	return m.state
}

// BackToMenu returns true if user wants to go back to menu.
func (m OnlineLobbyModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit entirely.
func (m OnlineLobbyModel) IsQuitting() bool {
	return m.quitting
}

// MatchID returns the match ID if a match was started.
func (m OnlineLobbyModel) MatchID() netplay.MatchID {
	return m.matchID
}

// Side returns which side (P1/P2) this session plays.
func (m OnlineLobbyModel) Side() core.PlayerID {
	return m.side
}

// Seed returns the board seed announced at match start.
func (m OnlineLobbyModel) Seed() uint64 {
	return m.seed
}

// OnlineMatchModel renders an online match from authoritative snapshots.
// The coordinator's match loop owns the shared game; this model keeps a
// mirror board that it overwrites from SnapshotEvents and re-resolves
// locally for the connection highlights. Input goes the other way as
// PlayerInputMsg taps, so no game state is ever shared across goroutines.
type OnlineMatchModel struct {
	sessionID   netplay.SessionID
	matchID     netplay.MatchID
	side        core.PlayerID
	coordinator *netplay.Coordinator
	eventChan   <-chan netplay.SessionEvent

	mirror  *board.Board
	screen  *core.Screen
	width   int
	height  int
	cursorX int
	cursorY int

	scoreLeft  int
	scoreRight int
	ended      bool
	endReason  netplay.MatchEndReason
	winner     core.PlayerID

	keyMapper  *KeyMapper
	backToMenu bool
	quitting   bool
}

// NewOnlineMatchModel creates the match view for a started match. The
// mirror board is built from the announced seed with the same config the
// coordinator used, so it matches the server board even before the first
// snapshot arrives.
func NewOnlineMatchModel(
	sessionID netplay.SessionID,
	matchID netplay.MatchID,
	side core.PlayerID,
	seed uint64,
	coordinator *netplay.Coordinator,
	eventChan <-chan netplay.SessionEvent,
	width, height int,
) OnlineMatchModel {
	zcfg, err := config.Load("")
	var mirror *board.Board
	if err != nil {
		mirror = board.NewDefault(seed)
	} else {
		mirror = board.New(zcfg.Board.Width, zcfg.Board.Height, zcfg.Board.MissingLinkPercent, seed)
	}
	mirror.Resolve()

	return OnlineMatchModel{
		sessionID:   sessionID,
		matchID:     matchID,
		side:        side,
		coordinator: coordinator,
		eventChan:   eventChan,
		mirror:      mirror,
		screen:      core.NewScreen(width, height),
		width:       width,
		height:      height,
		cursorX:     mirror.Width() / 2,
		cursorY:     mirror.Height() / 2,
		keyMapper:   NewKeyMapper(),
	}
}

// Init starts listening for match events.
func (m OnlineMatchModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m OnlineMatchModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		if m.eventChan == nil {
			return nil
		}
		evt, ok := <-m.eventChan
		if !ok {
			return nil
		}
		return evt
	}
}

// boardOrigin mirrors the local game's board placement so clicks line up.
func (m OnlineMatchModel) boardOrigin() (int, int) {
	return core.Max((m.width-m.mirror.Width())/2, 4), 3
}

// Update handles messages.
func (m OnlineMatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case netplay.SnapshotEvent:
		if err := m.mirror.ApplySnapshot(msg.Board); err == nil {
			m.mirror.Resolve()
		}
		m.scoreLeft = msg.Score1
		m.scoreRight = msg.Score2
		return m, m.waitForEvent()
	case netplay.MatchEndedEvent:
		m.ended = true
		m.endReason = msg.Reason
		m.winner = msg.Winner
		m.scoreLeft = msg.Score1
		m.scoreRight = msg.Score2
		return m, nil
	}
	return m, nil
}

func (m OnlineMatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leaveMatch()
		m.quitting = true
		return m, tea.Quit
	}

	if m.ended {
		if action == core.ActionBack || action == core.ActionRotate {
			m.backToMenu = true
		}
		return m, nil
	}

	switch action {
	case core.ActionUp:
		m.cursorY = core.Clamp(m.cursorY-1, 0, m.mirror.Height()-1)
	case core.ActionDown:
		m.cursorY = core.Clamp(m.cursorY+1, 0, m.mirror.Height()-1)
	case core.ActionLeft:
		m.cursorX = core.Clamp(m.cursorX-1, 0, m.mirror.Width()-1)
	case core.ActionRight:
		m.cursorX = core.Clamp(m.cursorX+1, 0, m.mirror.Width()-1)
	case core.ActionRotate:
		m.sendTap(m.cursorX, m.cursorY)
	case core.ActionArmBomb, core.ActionArmCross, core.ActionArmArrow:
		in := core.NewInputFrame()
		in.Set(action)
		m.coordinator.Send(netplay.PlayerInputMsg{
			MatchID: m.matchID,
			Player:  m.side,
			Input:   in,
		})
	case core.ActionBack:
		m.leaveMatch()
		m.backToMenu = true
	}

	return m, nil
}

func (m OnlineMatchModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}
	ox, oy := m.boardOrigin()
	if x, y, hit := m.keyMapper.MapMouseToCell(msg, ox, oy, m.mirror.Width(), m.mirror.Height()); hit {
		m.cursorX, m.cursorY = x, y
		m.sendTap(x, y)
	}
	return m, nil
}

func (m OnlineMatchModel) sendTap(x, y int) {
	in := core.NewInputFrame()
	in.SetTap(x, y)
	m.coordinator.Send(netplay.PlayerInputMsg{
		MatchID: m.matchID,
		Player:  m.side,
		Input:   in,
	})
}

func (m OnlineMatchModel) leaveMatch() {
	m.coordinator.Send(netplay.LeaveMatchMsg{
		SessionID: m.sessionID,
		MatchID:   m.matchID,
	})
}

// yourScore returns this session's score and the opponent's.
func (m OnlineMatchModel) yourScore() (you, them int) {
	if m.side == core.Player2 {
		return m.scoreRight, m.scoreLeft
	}
	return m.scoreLeft, m.scoreRight
}

// View renders the mirror board with the authoritative scores.
func (m OnlineMatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	you, them := m.yourScore()
	side := "left"
	if m.side == core.Player2 {
		side = "right"
	}
	hud := fmt.Sprintf(" ZapGrid Online — You (%s): %d  Opponent: %d", side, you, them)
	m.screen.DrawText(0, 0, hud)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')

	ox, oy := m.boardOrigin()
	game.DrawPins(m.screen, m.mirror, ox, oy)
	game.DrawBoard(m.screen, m.mirror, ox, oy, m.cursorX, m.cursorY)

	if m.ended {
		m.screen.DrawTextCentered(m.height/2-1, m.endedLine())
		m.screen.DrawTextCentered(m.height/2+1, "Press Enter to return to the menu")
	}

	return RenderScreen(m.screen)
}

func (m OnlineMatchModel) endedLine() string {
	you, them := m.yourScore()
	switch {
	case m.winner == m.side:
		return fmt.Sprintf("You win %d:%d! (%s)", you, them, m.endReason)
	case m.winner == 0:
		return m.endReason.String()
	default:
		return fmt.Sprintf("You lose %d:%d (%s)", you, them, m.endReason)
	}
}

// BackToMenu returns true if user wants to go back to menu.
func (m OnlineMatchModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit entirely.
func (m OnlineMatchModel) IsQuitting() bool {
	return m.quitting
}
