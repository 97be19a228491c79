// Package tui is a read-only browser for the app inventory: a cursor list
// with a scrollable detail pane. All mutation goes through the CLI commands.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/casey/apptrack/internal/app"
	"github.com/casey/apptrack/internal/domain"
)

type mode int

const (
	modeList mode = iota
	modeDetail
)

type appsDataMsg struct {
	apps []*domain.App
	err  error
}

// Model is the root Bubble Tea model
type Model struct {
	app    *app.App
	mode   mode
	apps   []*domain.App
	cursor int
	filter domain.Status // "" means all

	detail viewport.Model

	width   int
	height  int
	loading bool
	err     error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:     a,
		loading: true,
		detail:  viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadApps()
}

func (m Model) loadApps() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		apps, err := m.app.Apps.List(context.Background(), filter)
		return appsDataMsg{apps: apps, err: err}
	}
}

// cycleFilter advances the status filter: all -> each status -> all.
func cycleFilter(current domain.Status) domain.Status {
	statuses := domain.Statuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current {
			if i == len(statuses)-1 {
				return ""
			}
			return statuses[i+1]
		}
	}
	return ""
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 6
		return m, nil

	case appsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.apps = msg.apps
			if m.cursor >= len(m.apps) {
				m.cursor = max(0, len(m.apps)-1)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.apps)-1 {
			m.cursor++
		}

	case key.Matches(msg, DefaultKeyMap.Filter):
		m.filter = cycleFilter(m.filter)
		m.cursor = 0
		m.loading = true
		return m, m.loadApps()

	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.apps) > 0 && m.cursor < len(m.apps) {
			m.mode = modeDetail
			m.detail.SetContent(renderDetail(m.apps[m.cursor]))
			m.detail.GotoTop()
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, DefaultKeyMap.Back):
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.loading {
		return "Loading apps..."
	}
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.mode == modeDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var s strings.Builder

	header := "Apps"
	if m.filter != "" {
		header += subtitleStyle.Render("  (status: " + string(m.filter) + ")")
	}
	s.WriteString(titleStyle.Render(header) + "\n\n")

	if len(m.apps) == 0 {
		s.WriteString(subtitleStyle.Render("  No apps found. Use 'apptrack add' to create one.") + "\n")
	}

	for i, a := range m.apps {
		indicator := "  "
		nameStyle := labelStyle
		if i == m.cursor {
			indicator = "> "
			nameStyle = nameStyle.Foreground(primaryColor)
		}
		line := fmt.Sprintf("%s%s %s %s",
			indicator,
			nameStyle.Render(a.Name),
			idStyle.Render("("+a.ID+")"),
			statusStyle(a.Status).Render("["+string(a.Status)+"]"),
		)
		s.WriteString(line + "\n")
		if a.Description != "" {
			s.WriteString(subtitleStyle.Render("    "+truncateStr(a.Description, 70)) + "\n")
		}
	}

	s.WriteString("\n" + helpStyle.Render("  j/k: navigate  enter: details  s: cycle status filter  q: quit"))
	return s.String()
}

func (m Model) viewDetail() string {
	app := m.apps[m.cursor]
	header := titleStyle.Render(app.Name) + " " + idStyle.Render("("+app.ID+")")
	footer := helpStyle.Render("  j/k: scroll  esc: back  q: quit")
	return header + "\n\n" + m.detail.View() + "\n\n" + footer
}

func renderDetail(app *domain.App) string {
	var s strings.Builder

	fmt.Fprintf(&s, "%s %s\n", labelStyle.Render("Status:"), statusStyle(app.Status).Render(app.Status.Title()))
	if app.Description != "" {
		fmt.Fprintf(&s, "%s %s\n", labelStyle.Render("Description:"), app.Description)
	}
	if len(app.URLs) > 0 {
		fmt.Fprintf(&s, "\n%s\n", labelStyle.Render("URLs:"))
		for _, env := range domain.Environments() {
			if url, ok := app.URLs[env]; ok {
				fmt.Fprintf(&s, "  %s: %s\n", env.Title(), url)
			}
		}
	}
	if app.Repository != "" {
		fmt.Fprintf(&s, "\n%s %s\n", labelStyle.Render("Repository:"), app.Repository)
	}
	if app.TechStack != "" {
		fmt.Fprintf(&s, "%s %s\n", labelStyle.Render("Tech Stack:"), app.TechStack)
	}
	if app.Notes != "" {
		fmt.Fprintf(&s, "\n%s\n  %s\n", labelStyle.Render("Notes:"), app.Notes)
	}
	fmt.Fprintf(&s, "\n%s %s\n", labelStyle.Render("Created:"), app.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&s, "%s %s\n", labelStyle.Render("Updated:"), app.UpdatedAt.Format("2006-01-02 15:04:05"))

	return s.String()
}

// truncateStr truncates a string to maxLen runes with ellipsis
func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
