package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/atomicstack/menu-editor/internal/state"
	"github.com/atomicstack/menu-editor/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width           int
	Height          int
	InitialWidth    int
	InitialHeight   int
	ShowFooter      bool
	Verbose         bool
	ValidationHints bool
	Title           string
	Subtitle        string
	Currency        string
	IDs             string
}

// NewModel builds the UI model for a fresh, empty session.
func NewModel(cfg Config) (*ui.Model, error) {
	ids, err := menu.NewIDGenerator(cfg.IDs)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}
	session := state.NewSession(menu.NewStore(), ids)
	return ui.NewModel(session, ui.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		InitialWidth:    cfg.InitialWidth,
		InitialHeight:   cfg.InitialHeight,
		ShowFooter:      cfg.ShowFooter,
		Verbose:         cfg.Verbose,
		ValidationHints: cfg.ValidationHints,
		Title:           cfg.Title,
		Subtitle:        cfg.Subtitle,
		Currency:        cfg.Currency,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
