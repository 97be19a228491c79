// Package presenter renders apps and status messages to the terminal. All
// color is decorative: every line carries a glyph or label that keeps the
// output legible when ANSI codes are stripped.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casey/apptrack/internal/domain"
)

var (
	// Colors (basic ANSI so they track the terminal theme)
	greenColor  = lipgloss.Color("2")
	yellowColor = lipgloss.Color("3")
	blueColor   = lipgloss.Color("4")
	cyanColor   = lipgloss.Color("6")
	redColor    = lipgloss.Color("1")

	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(greenColor)
	idStyle      = lipgloss.NewStyle().Foreground(cyanColor)
	urlStyle     = lipgloss.NewStyle().Foreground(blueColor)
	infoStyle    = lipgloss.NewStyle().Foreground(blueColor)
	successStyle = lipgloss.NewStyle().Foreground(greenColor)
	warningStyle = lipgloss.NewStyle().Foreground(yellowColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(redColor)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusDevelopment: lipgloss.NewStyle().Foreground(yellowColor).Bold(true),
		domain.StatusStaging:     lipgloss.NewStyle().Foreground(cyanColor),
		domain.StatusProduction:  lipgloss.NewStyle().Foreground(greenColor),
		domain.StatusArchived:    lipgloss.NewStyle().Foreground(redColor),
	}
)

// StatusStyle returns the display style for a status.
func StatusStyle(s domain.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Presenter writes formatted output to a terminal (or any writer).
type Presenter struct {
	out io.Writer
}

// New creates a presenter writing to out.
func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Plain writes an unstyled line, keeping section text in prompt flows on the
// same writer as the styled messages.
func (p *Presenter) Plain(format string, args ...any) {
	fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

func (p *Presenter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", infoStyle.Render("ℹ"), fmt.Sprintf(format, args...))
}

func (p *Presenter) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

func (p *Presenter) Warning(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", warningStyle.Render("⚠"), fmt.Sprintf(format, args...))
}

func (p *Presenter) Error(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", errorStyle.Render("✗"), fmt.Sprintf(format, args...))
}

// Header prints a section banner.
func (p *Presenter) Header(title string) {
	rule := headerStyle.Render(strings.Repeat("═", 60))
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n\n", rule, headerStyle.Render("  "+title), rule)
}

// ListApps prints the list view: one block per app in collection order.
func (p *Presenter) ListApps(apps []*domain.App, filter domain.Status) {
	if filter != "" {
		p.Header("Apps - Status: " + filter.Title())
	} else {
		p.Header("All Apps")
	}

	if len(apps) == 0 {
		p.Info("No apps found.")
		fmt.Fprintln(p.out)
		return
	}

	for _, app := range apps {
		fmt.Fprintf(p.out, "%s (%s)\n", boldStyle.Render(app.Name), idStyle.Render(app.ID))
		fmt.Fprintf(p.out, "  Status: %s\n", StatusStyle(app.Status).Render(app.Status.Title()))

		if app.Description != "" {
			fmt.Fprintf(p.out, "  Description: %s\n", app.Description)
		}
		if len(app.URLs) > 0 {
			fmt.Fprintln(p.out, "  URLs:")
			for _, env := range domain.Environments() {
				if url, ok := app.URLs[env]; ok {
					fmt.Fprintf(p.out, "    %s: %s\n", env.Title(), urlStyle.Render(url))
				}
			}
		}
		if app.TechStack != "" {
			fmt.Fprintf(p.out, "  Tech: %s\n", app.TechStack)
		}
		fmt.Fprintln(p.out)
	}
}

// AppDetail prints the full field dump for one app.
func (p *Presenter) AppDetail(app *domain.App) {
	p.Header("App Details: " + app.Name)

	fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("ID:"), app.ID)
	fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("Name:"), app.Name)
	fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("Status:"), StatusStyle(app.Status).Render(app.Status.Title()))

	if app.Description != "" {
		fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("Description:"), app.Description)
	}
	if len(app.URLs) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", boldStyle.Render("URLs:"))
		for _, env := range domain.Environments() {
			if url, ok := app.URLs[env]; ok {
				fmt.Fprintf(p.out, "  %s: %s\n", env.Title(), urlStyle.Render(url))
			}
		}
	}
	if app.Repository != "" {
		fmt.Fprintf(p.out, "\n%s %s\n", boldStyle.Render("Repository:"), urlStyle.Render(app.Repository))
	}
	if app.TechStack != "" {
		fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("Tech Stack:"), app.TechStack)
	}
	if app.Notes != "" {
		fmt.Fprintf(p.out, "\n%s\n  %s\n", boldStyle.Render("Notes:"), app.Notes)
	}

	fmt.Fprintf(p.out, "\n%s %s\n", boldStyle.Render("Created:"), app.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(p.out, "%s %s\n", boldStyle.Render("Updated:"), app.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(p.out)
}
