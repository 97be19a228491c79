package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/casey/apptrack/internal/domain"
)

// RenderMarkdown produces the Markdown export document. Apps are grouped
// under status headings in the fixed order production, staging, development,
// archived, preserving collection order within each group. Empty fields are
// omitted and a horizontal rule separates apps.
func RenderMarkdown(apps []*domain.App, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# My Apps\n\n")
	fmt.Fprintf(&b, "*Generated on %s*\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	for _, status := range domain.ExportOrder() {
		var group []*domain.App
		for _, app := range apps {
			if app.Status == status {
				group = append(group, app)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", status.Title())
		for _, app := range group {
			fmt.Fprintf(&b, "### %s\n\n", app.Name)
			if app.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", app.Description)
			}
			if len(app.URLs) > 0 {
				b.WriteString("**URLs:**\n")
				for _, env := range domain.Environments() {
					if url, ok := app.URLs[env]; ok {
						fmt.Fprintf(&b, "- %s: %s\n", env.Title(), url)
					}
				}
				b.WriteString("\n")
			}
			if app.Repository != "" {
				fmt.Fprintf(&b, "**Repository:** %s\n\n", app.Repository)
			}
			if app.TechStack != "" {
				fmt.Fprintf(&b, "**Tech Stack:** %s\n\n", app.TechStack)
			}
			if app.Notes != "" {
				fmt.Fprintf(&b, "**Notes:** %s\n\n", app.Notes)
			}
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}
