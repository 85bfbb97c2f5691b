package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func testConfig() *config.Config {
	return config.NewConfigBuilder().
		WithDepth(1).
		WithVerbosity(0).
		WithLog(io.Discard).
		Build()
}

func logContains(m Model, s string) bool {
	for _, ln := range m.logLines {
		if strings.Contains(ln, s) {
			return true
		}
	}
	return false
}

// runCmd executes cmd and feeds its message back through Update.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, cmd := m.Update(cmd())
	return next.(Model), cmd
}

func TestHumanMoveAndEngineReply(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)
	testutil.AssertTrue(t, m.Init() == nil)
	testutil.AssertFalse(t, m.thinking)

	cmd := m.execCommand("22-18")
	testutil.AssertTrue(t, m.thinking)
	testutil.AssertEqual(t, m.g.Plies(), 1)
	testutil.AssertTrue(t, m.marked[checkers.Position{X: 3, Y: 4}], "last move is highlighted")

	m.execCommand("23-19")
	testutil.AssertTrue(t, logContains(m, "engine is thinking"))
	testutil.AssertEqual(t, m.g.Plies(), 1)

	m, cmd = runCmd(t, m, cmd)
	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertFalse(t, m.thinking)
	testutil.AssertEqual(t, m.g.Plies(), 2)
	testutil.AssertEqual(t, m.g.ToMove(), checkers.White)
	testutil.AssertTrue(t, logContains(m, "engine: "))
}

func TestEngineOpensForBlack(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.Black)
	testutil.AssertTrue(t, m.thinking)

	m, _ = runCmd(t, m, m.Init())
	testutil.AssertEqual(t, m.g.Plies(), 1)
	testutil.AssertEqual(t, m.g.ToMove(), checkers.Black)
	testutil.AssertFalse(t, m.thinking)
}

func TestIllegalMove(t *testing.T) {
	for _, text := range []string{"22-15", "18-14", "11-15"} {
		m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)

		testutil.AssertTrue(t, m.execCommand(text) == nil, text)
		testutil.AssertTrue(t, logContains(m, "move failed"), text)
		testutil.AssertEqual(t, m.g.Plies(), 0, text)
	}
}

func TestStaleEngineResultDropped(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)

	cmd := m.execCommand("22-18")
	testutil.AssertTrue(t, m.execCommand("new") == nil)
	testutil.AssertEqual(t, m.g.Plies(), 0)

	m, _ = runCmd(t, m, cmd)
	testutil.AssertEqual(t, m.g.Plies(), 0)
	testutil.AssertEqual(t, m.g.ToMove(), checkers.White)
}

func TestHint(t *testing.T) {
	board := testutil.MustSample(t, 1)
	m := NewModel(testConfig(), board, checkers.White)

	m, _ = runCmd(t, m, m.execCommand("hint"))
	testutil.AssertTrue(t, logContains(m, "hint: 25x18x11"))
	testutil.AssertEqual(t, m.g.Plies(), 0, "a hint does not move")
}

func TestGameOver(t *testing.T) {
	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		{X: 2, Y: 3}: checkers.WhiteMan,
		{X: 1, Y: 2}: checkers.BlackMan,
	})
	m := NewModel(testConfig(), board, checkers.White)

	testutil.AssertTrue(t, m.execCommand("14x5") == nil)
	testutil.AssertTrue(t, logContains(m, "game over: white wins (2-0)"))

	m.execCommand("5-1")
	testutil.AssertTrue(t, logContains(m, "game over: white wins"))
	testutil.AssertTrue(t, m.execCommand("hint") == nil)
}

func TestCommands(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)

	m.execCommand("moves")
	testutil.AssertTrue(t, logContains(m, "22-18"))

	m.execCommand("fen")
	testutil.AssertTrue(t, logContains(m, "W:W21,22"))

	m.execCommand("pdn")
	testutil.AssertTrue(t, logContains(m, `[GameType "21"]`))

	m.execCommand("help")
	testutil.AssertTrue(t, logContains(m, "commands:"))
}

func TestKeyInput(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m = next.(Model)
	testutil.AssertEqual(t, m.m, modeInput)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("22-18")})
	m = next.(Model)
	testutil.AssertEqual(t, m.input.Value(), "22-18")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	testutil.AssertEqual(t, m.g.Plies(), 1)
	testutil.AssertEqual(t, m.input.Value(), "")

	m, _ = runCmd(t, m, cmd)
	testutil.AssertEqual(t, m.g.Plies(), 2)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	testutil.AssertEqual(t, m.m, modeNormal)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	testutil.AssertTrue(t, cmd != nil)
}

func TestView(t *testing.T) {
	m := NewModel(testConfig(), checkers.InitialBoard(), checkers.White)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := next.(Model).View()
	testutil.AssertContains(t, view, "white to move")
	testutil.AssertContains(t, view, "press i to enter a move")
}

func TestRenderNumbers(t *testing.T) {
	lines := strings.Split(RenderNumbers(), "\n")
	testutil.AssertEqual(t, lines[0], "     1     2     3     4")
	testutil.AssertEqual(t, lines[7], " 29    30    31    32   ")
}
