package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"artquest/internal/store"
	"artquest/internal/tasks"
)

// RunBoard starts the interactive daily board.
func RunBoard(ctx context.Context, st *store.Store, mgr *tasks.Manager, out io.Writer) error {
	m := newBoardModel(ctx, st, mgr)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
