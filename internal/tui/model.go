// Package tui is a terminal front end for playing against the engine.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/search"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

// engineMsg carries a finished engine search back to Update. gameID and
// plies identify the position searched; stale results are dropped.
type engineMsg struct {
	gameID string
	plies  int
	sol    search.Solution
	stats  search.Stats
	err    error
	hint   bool
}

type Model struct {
	cfg   *config.Config
	start checkers.Board
	human checkers.Player
	g     *game.Game

	m        mode
	input    textinput.Model
	logLines []string
	thinking bool
	marked   map[checkers.Position]bool

	width  int
	height int
}

// NewModel starts a game from board with White to move; the engine plays
// the side that is not human.
func NewModel(cfg *config.Config, board checkers.Board, human checkers.Player) Model {
	ti := textinput.New()
	ti.Placeholder = "22-18, moves, hint, pdn, new..."
	ti.Prompt = "> "
	ti.CharLimit = 60
	ti.Width = 40

	m := Model{
		cfg:   cfg,
		start: board,
		human: human,
		g:     game.New(board, checkers.White, cfg.Game),
		m:     modeNormal,
		input: ti,
		logLines: []string{
			fmt.Sprintf("you play %s; press i to enter a move", human),
		},
	}
	m.thinking = m.engineToMove()
	return m
}

// Init lets the engine open when the human plays Black.
func (m Model) Init() tea.Cmd {
	if m.engineToMove() {
		return m.searchCmd(false)
	}
	return nil
}

func (m Model) engineToMove() bool {
	return !m.g.Status().IsOver() && m.g.ToMove() != m.human
}

// searchCmd searches a copy of the current board off the update loop.
func (m Model) searchCmd(hint bool) tea.Cmd {
	board := m.g.Board()
	toMove := m.g.ToMove()
	gameID, plies := m.g.ID.String(), m.g.Plies()
	searchCfg := *m.cfg.Search
	return func() tea.Msg {
		sol, stats, err := search.Best(&board, toMove, &searchCfg)
		return engineMsg{gameID: gameID, plies: plies, sol: sol, stats: stats, err: err, hint: hint}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(60, max(20, m.width-4))
		return m, nil

	case engineMsg:
		if msg.gameID != m.g.ID.String() || msg.plies != m.g.Plies() {
			return m, nil
		}
		m.thinking = false
		return m, m.applyEngine(msg)

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line == "" {
					return m, nil
				}
				return m, m.execCommand(line)
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// execCommand runs one input line. Anything that is not a command is
// taken as a move.
func (m *Model) execCommand(line string) tea.Cmd {
	m.appendLog("> " + line)

	switch strings.ToLower(line) {
	case "moves":
		texts := make([]string, 0)
		for _, mv := range m.g.LegalMoves() {
			texts = append(texts, engine.MoveText(mv))
		}
		m.appendLog("legal: " + strings.Join(texts, " "))
		return nil

	case "hint":
		if m.thinking || m.g.Status().IsOver() {
			return nil
		}
		m.thinking = true
		return m.searchCmd(true)

	case "fen":
		m.appendLog(m.g.FEN())
		return nil

	case "pdn":
		var buf bytes.Buffer
		_ = output.OutputGame(&buf, m.g, 0, m.cfg) // a bytes.Buffer does not fail
		for _, ln := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			m.appendLog("  " + ln)
		}
		return nil

	case "new":
		m.g = game.New(m.start, checkers.White, m.cfg.Game)
		m.marked = nil
		m.thinking = false
		m.appendLog("new game")
		if m.engineToMove() {
			m.thinking = true
			return m.searchCmd(false)
		}
		return nil

	case "help":
		m.appendLog("enter moves as 22-18 or 25x18x11; commands: moves hint fen pdn new")
		return nil
	}

	if m.thinking {
		m.appendLog("engine is thinking")
		return nil
	}
	if m.g.Status().IsOver() {
		m.appendLog("game over: " + m.g.Status().String())
		return nil
	}
	if m.g.ToMove() != m.human {
		m.appendLog("not your turn")
		return nil
	}

	mv, err := m.g.ApplyText(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("move failed: %v", err))
		return nil
	}
	m.markMove(mv)
	m.appendLog(fmt.Sprintf("you: %s", engine.MoveText(mv)))
	return m.afterMove()
}

// afterMove reports a finished game or starts the engine's reply.
func (m *Model) afterMove() tea.Cmd {
	if m.g.Status().IsOver() {
		m.appendLog(fmt.Sprintf("game over: %s (%s)", m.g.Status(), m.g.Status().Result()))
		return nil
	}
	if m.engineToMove() {
		m.thinking = true
		return m.searchCmd(false)
	}
	return nil
}

func (m *Model) applyEngine(msg engineMsg) tea.Cmd {
	if msg.err != nil {
		m.appendLog(fmt.Sprintf("engine failed: %v", msg.err))
		return nil
	}
	if msg.hint {
		m.appendLog(fmt.Sprintf("hint: %s (nodes %d)", msg.sol, msg.stats.Nodes))
		return nil
	}

	mv := msg.sol.Move
	if !msg.sol.HasMove() {
		moves := m.g.LegalMoves()
		if len(moves) == 0 {
			return nil
		}
		mv = moves[0]
	}
	if err := m.g.Apply(mv); err != nil {
		m.appendLog(fmt.Sprintf("engine move rejected: %v", err))
		return nil
	}
	m.markMove(mv)
	m.appendLog(fmt.Sprintf("engine: %s (%s, nodes %d)", engine.MoveText(mv), msg.sol, msg.stats.Nodes))
	return m.afterMove()
}

func (m *Model) markMove(mv checkers.Move) {
	m.marked = map[checkers.Position]bool{mv.From: true, mv.To: true}
	for _, p := range mv.Path {
		m.marked[p] = true
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	state := m.g.Status().String()
	if m.thinking {
		state = "engine thinking"
	} else if !m.g.Status().IsOver() {
		state = m.g.ToMove().String() + " to move"
	}

	header := titleStyle.Render(fmt.Sprintf("checkers  [%s]  mode:%s  %s  %s depth %d",
		state, modeStr, m.human, m.cfg.Search.Algorithm, m.cfg.Search.Depth))

	board := m.g.Board()
	boardBox := boxStyle.Render(RenderBoard(&board, m.marked))
	numbersBox := boxStyle.Render(RenderNumbers())
	top := lipgloss.JoinHorizontal(lipgloss.Top, boardBox, numbersBox)

	logHeight := max(5, m.height-lipgloss.Height(top)-6)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move, q to quit"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + top + "\n" + logBox + "\n" + inputBox + "\n"
}
