package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
)

// Run plays one interactive game from the initial position, with the
// human on side human.
func Run(cfg *config.Config, human checkers.Player) error {
	p := tea.NewProgram(NewModel(cfg, checkers.InitialBoard(), human), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
