package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"artquest/internal/timer"
	"artquest/internal/ui"
)

type focusModel struct {
	session *timer.Session
	aborted bool
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newFocusModel(minutes int) focusModel {
	s := timer.New(minutes)
	s.Start()
	return focusModel{session: s}
}

func (m focusModel) Init() tea.Cmd {
	return tickCmd()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.session.Tick(time.Second) {
			return m, tea.Quit
		}
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.aborted = true
			return m, tea.Quit
		case " ", "p":
			m.session.Toggle()
			return m, nil
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	s := m.session
	remaining := s.Remaining().Round(time.Second)
	mins := int(remaining / time.Minute)
	secs := int(remaining%time.Minute) / int(time.Second)

	status := ""
	switch s.State() {
	case timer.StatePaused:
		status = ui.Warn.Render(" paused")
	case timer.StateDone:
		status = ui.Good.Render(" done!")
	}

	bar := ui.Bar(int(s.Progress()*100), 100, 30)
	return fmt.Sprintf("%s Focus %02d:%02d %s%s\n%s\n",
		ui.IconTimer, mins, secs, bar, status,
		ui.Dim.Render("space: pause/resume  q: abort"))
}

// RunFocus runs a focus countdown and reports whether it ran to completion
// (as opposed to being aborted).
func RunFocus(minutes int, out io.Writer) (bool, error) {
	p := tea.NewProgram(newFocusModel(minutes), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(focusModel)
	if !ok {
		return false, nil
	}
	return !m.aborted && m.session.State() == timer.StateDone, nil
}
