package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/store"
	"artquest/internal/tasks"
	"artquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	st  *store.Store
	mgr *tasks.Manager

	width  int
	height int

	profile   *store.Profile
	taskSet   store.TaskSet
	analytics store.Analytics

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile   *store.Profile
	taskSet   store.TaskSet
	analytics store.Analytics
	err       error
}

type toggledMsg struct {
	res *tasks.ToggleResult
	err error
}

type checkedInMsg struct {
	res *tasks.CheckInResult
	err error
}

func newBoardModel(ctx context.Context, st *store.Store, mgr *tasks.Manager) boardModel {
	return boardModel{
		ctx:     ctx,
		st:      st,
		mgr:     mgr,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.st.UserData(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		ts, err := m.st.Tasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		analytics, err := m.st.Analytics(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: &profile, taskSet: ts, analytics: analytics}
	}
}

func (m boardModel) toggleCmd(collection, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.mgr.Toggle(m.ctx, collection, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) checkInCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.mgr.CheckIn(m.ctx)
		return checkedInMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.taskSet = msg.taskSet
		m.analytics = msg.analytics
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Completed {
			m.lastLog = fmt.Sprintf("Done: %s (+%d pts, streak %d)", msg.res.Task.Title, msg.res.PointsDelta, msg.res.Streak)
			if msg.res.LevelUp != nil {
				m.lastLog += fmt.Sprintf("  %s → level %d", ui.BadgeLevelUp, msg.res.LevelUp.NewLevel)
			}
		} else {
			m.lastLog = fmt.Sprintf("Undone: %s (%d pts)", msg.res.Task.Title, msg.res.PointsDelta)
		}
		return m, m.loadCmd()
	case checkedInMsg:
		if msg.err != nil {
			m.lastLog = "Check-in failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyCheckedIn {
			m.lastLog = "Already checked in today."
		} else {
			m.lastLog = fmt.Sprintf("Checked in: %d tasks for today.", len(msg.res.Tasks))
			if msg.res.UsedFallback {
				m.lastLog += " (offline plan)"
			}
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "g":
			m.lastLog = "Checking in…"
			return m, m.checkInCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.taskRows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c":
			rows := m.taskRows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			m.lastLog = "Toggling " + row.task.Title + "…"
			return m, m.toggleCmd(row.collection, row.task.ID)
		}
	}
	return m, nil
}

type taskRow struct {
	collection string
	task       store.Task
}

// taskRows flattens today's daily batch and the custom list into the
// selectable rows, daily first.
func (m *boardModel) taskRows() []taskRow {
	today := engine.DateKey(time.Now())
	var out []taskRow
	for _, t := range m.taskSet.Daily {
		if t.Date == today {
			out = append(out, taskRow{collection: "daily", task: t})
		}
	}
	for _, t := range m.taskSet.Custom {
		out = append(out, taskRow{collection: "custom", task: t})
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.profile == nil {
		return "ArtQuest — loading…"
	}
	p := m.profile
	within := p.Points % config.PointsPerLevel
	bar := ui.Bar(within, config.PointsPerLevel, 30)
	return fmt.Sprintf("ArtQuest | Level %d | %d pts %s | %s %d day streak",
		p.Level, p.Points, bar, ui.IconFire, p.Streak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Skills"}
	for _, st := range engine.CategoryStandings(m.analytics) {
		info := st.Category.Info()
		lines = append(lines, fmt.Sprintf("- %s L%d %s", info.Name, st.Level, ui.Bar(st.Percent, 100, 10)))
	}
	lines = append(lines, "")
	lines = append(lines, "Last 14 days")
	var heat strings.Builder
	for _, d := range engine.RecentActivity(m.analytics, time.Now(), 14) {
		heat.WriteString(ui.HeatGlyph(d.HeatLevel))
	}
	lines = append(lines, heat.String())
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle done")
	lines = append(lines, "- g: check in")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	var out []string
	out = append(out, "Today")
	rows := m.taskRows()
	if len(rows) == 0 {
		out = append(out, "(no tasks — press g to check in)")
	}
	lastCollection := ""
	for i, row := range rows {
		if row.collection != lastCollection && row.collection == "custom" {
			out = append(out, "")
			out = append(out, "Custom")
		}
		lastCollection = row.collection

		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		info := config.Category(row.task.Category).Info()
		out = append(out, fmt.Sprintf("%s%s %s %s (%dm)", cursor, ui.Checkbox(row.task.Completed), info.Icon, row.task.Title, row.task.Duration))
	}

	week := engine.WeekKey(time.Now())
	var goals []store.WeeklyGoal
	for _, g := range m.taskSet.Weekly {
		if g.Week == week {
			goals = append(goals, g)
		}
	}
	if len(goals) > 0 {
		out = append(out, "")
		out = append(out, "This week")
		for _, g := range goals {
			out = append(out, fmt.Sprintf("  %s %d/%d %s", g.Title, g.Progress, g.TargetCount, ui.Bar(tasks.ProgressPercent(g), 100, 12)))
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
