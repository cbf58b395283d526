package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reviewdto "examtrack/internal/modules/review/dto"
	settingsdto "examtrack/internal/modules/settings/dto"
	"examtrack/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type reviewPort interface {
	Today(ctx context.Context) ([]reviewdto.TaskOutput, error)
	Overdue(ctx context.Context) ([]reviewdto.TaskOutput, error)
	Upcoming(ctx context.Context, days int) ([]reviewdto.TaskOutput, error)
	Complete(ctx context.Context, taskID string) (reviewdto.ChangeOutput, error)
	Snooze(ctx context.Context, taskID string, days int) (reviewdto.ChangeOutput, error)
	Remove(ctx context.Context, taskID string) (reviewdto.ChangeOutput, error)
	Summary(ctx context.Context) (reviewdto.SummaryOutput, error)
	Reload(ctx context.Context) error
}

type settingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Countdown(ctx context.Context) (settingsdto.CountdownOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabToday tabID = iota
	tabOverdue
	tabUpcoming
	tabCount
)

var tabLabels = [tabCount]string{"Today", "Overdue", "Upcoming"}

// ─── async messages ──────────────────────────────────────────────────────────

type loadedMsg struct {
	tab       tabID
	tasks     []reviewdto.TaskOutput
	summary   reviewdto.SummaryOutput
	settings  settingsdto.SettingsOutput
	countdown settingsdto.CountdownOutput
	err       error
}

type changedMsg struct {
	verb string
	out  reviewdto.ChangeOutput
	err  error
}

type tickMsg time.Time

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	Complete key.Binding
	Snooze1  key.Binding
	Snooze2  key.Binding
	Snooze3  key.Binding
	Remove   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		Complete: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "complete")),
		Snooze1:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "snooze 1d")),
		Snooze2:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "snooze 2d")),
		Snooze3:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "snooze 3d")),
		Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Complete, k.Snooze1, k.Snooze2, k.Snooze3, k.Remove},
		{k.Reload, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the review dashboard: exam countdown on top, one task list per
// tab, and a status bar with the queue summary.
type Model struct {
	review   reviewPort
	settings settingsPort

	activeTab tabID
	tasks     []reviewdto.TaskOutput
	cursor    int
	summary   reviewdto.SummaryOutput
	countdown settingsdto.CountdownOutput
	compact   bool
	styles    theme.Styles

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(review reviewPort, settings settingsPort) Model {
	return Model{
		review:    review,
		settings:  settings,
		activeTab: tabToday,
		styles:    theme.For("light"),
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(m.activeTab), tickCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		return m, tea.Batch(m.loadCmd(m.activeTab), tickCmd())

	case loadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		if msg.tab != m.activeTab {
			return m, nil
		}
		m.tasks = msg.tasks
		m.summary = msg.summary
		m.countdown = msg.countdown
		m.compact = msg.settings.Compact
		m.styles = theme.For(msg.settings.Theme)
		if m.cursor >= len(m.tasks) {
			m.cursor = max(len(m.tasks)-1, 0)
		}
		if m.status == "loading" {
			m.status = "ready"
		}

	case changedMsg:
		switch {
		case msg.err != nil:
			m.status = msg.verb + " failed: " + msg.err.Error()
		case !msg.out.Changed:
			m.status = msg.verb + ": nothing to change"
		default:
			m.status = msg.verb
		}
		return m, m.loadCmd(m.activeTab)

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			m.cursor = 0
			return m, m.loadCmd(m.activeTab)
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Reload):
			m.status = "reloaded"
			return m, m.reloadCmd()
		case key.Matches(msg, m.keys.Complete):
			return m, m.selectedCmd("completed", func(ctx context.Context, id string) (reviewdto.ChangeOutput, error) {
				return m.review.Complete(ctx, id)
			})
		case key.Matches(msg, m.keys.Snooze1, m.keys.Snooze2, m.keys.Snooze3):
			days := int(msg.String()[0] - '0')
			return m, m.selectedCmd(fmt.Sprintf("snoozed %dd", days), func(ctx context.Context, id string) (reviewdto.ChangeOutput, error) {
				return m.review.Snooze(ctx, id, days)
			})
		case key.Matches(msg, m.keys.Remove):
			return m, m.selectedCmd("removed", func(ctx context.Context, id string) (reviewdto.ChangeOutput, error) {
				return m.review.Remove(ctx, id)
			})
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.help.View(m.keys), statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderTasks(), statusBar)
}

func (m Model) renderHeader() string {
	s := m.styles
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = s.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = s.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := s.Title.Render("examtrack") + "  " + strings.Join(parts, s.Muted.Render(" │ "))
	return s.Bar.Width(m.width).Render(bar) + "\n" + m.renderCountdown() + "\n"
}

func (m Model) renderCountdown() string {
	c := m.countdown
	if c.TargetDate.IsZero() {
		return ""
	}
	if c.Passed {
		return m.styles.Muted.Render("exam day has passed")
	}
	return m.styles.Hot.Render(fmt.Sprintf("%dd %dh %dm", c.Days, c.Hours, c.Minutes)) +
		m.styles.Muted.Render(" until "+c.TargetDate.Format("Mon 02 Jan 2006 15:04"))
}

func (m Model) renderTasks() string {
	s := m.styles
	if len(m.tasks) == 0 {
		return s.Pane.Render(s.Muted.Render("nothing queued"))
	}
	lines := make([]string, 0, len(m.tasks)*2)
	for i, t := range m.tasks {
		cursor := "  "
		title := fmt.Sprintf("%s › %s › %s", t.Subject, t.ChapterID, t.Topic)
		if i == m.cursor {
			cursor = s.Selected.Render("▸ ")
			title = s.Selected.Render(title)
		}
		line := cursor + title + "  " + s.Muted.Render(t.DueAt.Format("02 Jan 15:04"))
		switch {
		case t.DoneAt != nil:
			line += "  " + s.Done.Render("done")
		case t.DaysOverdue > 0:
			line += "  " + s.Overdue.Render(fmt.Sprintf("overdue %dd", t.DaysOverdue))
		case t.Overdue:
			line += "  " + s.Overdue.Render("overdue")
		}
		lines = append(lines, line)
		if !m.compact {
			detail := t.Difficulty
			if t.SnoozeCount > 0 {
				detail += fmt.Sprintf(" · snoozed %d×", t.SnoozeCount)
			}
			lines = append(lines, "    "+s.Muted.Render(detail))
		}
	}
	return s.Pane.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusBar() string {
	s := m.styles
	left := fmt.Sprintf("%d today · %d overdue · %d upcoming  %s",
		m.summary.DueToday, m.summary.Overdue, m.summary.Upcoming, m.status)
	right := s.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + s.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── async commands ──────────────────────────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) loadCmd(tab tabID) tea.Cmd {
	return func() tea.Msg {
		return m.load(context.Background(), tab)
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.review.Reload(ctx); err != nil {
			return loadedMsg{tab: m.activeTab, err: err}
		}
		return m.load(ctx, m.activeTab)
	}
}

func (m Model) load(ctx context.Context, tab tabID) loadedMsg {
	var (
		tasks []reviewdto.TaskOutput
		err   error
	)
	switch tab {
	case tabOverdue:
		tasks, err = m.review.Overdue(ctx)
	case tabUpcoming:
		tasks, err = m.review.Upcoming(ctx, 0)
	default:
		tasks, err = m.review.Today(ctx)
	}
	if err != nil {
		return loadedMsg{tab: tab, err: err}
	}
	summary, err := m.review.Summary(ctx)
	if err != nil {
		return loadedMsg{tab: tab, err: err}
	}
	settings, err := m.settings.Get(ctx)
	if err != nil {
		return loadedMsg{tab: tab, err: err}
	}
	countdown, err := m.settings.Countdown(ctx)
	if err != nil {
		return loadedMsg{tab: tab, err: err}
	}
	return loadedMsg{tab: tab, tasks: tasks, summary: summary, settings: settings, countdown: countdown}
}

func (m Model) selectedCmd(verb string, fn func(context.Context, string) (reviewdto.ChangeOutput, error)) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	taskID := m.tasks[m.cursor].ID
	return func() tea.Msg {
		out, err := fn(context.Background(), taskID)
		return changedMsg{verb: verb, out: out, err: err}
	}
}
