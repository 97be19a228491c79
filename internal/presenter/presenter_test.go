package presenter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casey/apptrack/internal/domain"
)

func TestListApps_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out)

	p.ListApps(nil, "")

	assert.Contains(t, out.String(), "All Apps")
	assert.Contains(t, out.String(), "No apps found.")
}

func TestListApps_FilterHeader(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out)

	p.ListApps(nil, domain.StatusProduction)

	assert.Contains(t, out.String(), "Apps - Status: Production")
}

func TestListApps_RendersFields(t *testing.T) {
	app := domain.NewApp("my-app", "My App")
	app.Description = "Does things"
	app.SetURL(domain.EnvProduction, "https://example.com")
	app.TechStack = "Go/cobra"

	bare := domain.NewApp("bare", "Bare")

	out := &bytes.Buffer{}
	New(out).ListApps([]*domain.App{app, bare}, "")
	got := out.String()

	assert.Contains(t, got, "My App")
	assert.Contains(t, got, "my-app")
	assert.Contains(t, got, "Status: ")
	assert.Contains(t, got, "Development")
	assert.Contains(t, got, "Description: Does things")
	assert.Contains(t, got, "Production: ")
	assert.Contains(t, got, "https://example.com")
	assert.Contains(t, got, "Tech: Go/cobra")

	// Optional sections are omitted for the bare app.
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("Description:")))
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("URLs:")))
}

func TestAppDetail(t *testing.T) {
	app := domain.NewApp("my-app", "My App")
	app.Repository = "https://github.com/me/my-app"
	app.Notes = "remember"

	out := &bytes.Buffer{}
	New(out).AppDetail(app)
	got := out.String()

	assert.Contains(t, got, "App Details: My App")
	assert.Contains(t, got, "ID:")
	assert.Contains(t, got, "my-app")
	assert.Contains(t, got, "Repository:")
	assert.Contains(t, got, "Notes:")
	assert.Contains(t, got, "remember")
	assert.Contains(t, got, "Created:")
	assert.Contains(t, got, "Updated:")
}

func TestMessages_LegibleWithoutColor(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out)

	p.Info("info %d", 1)
	p.Success("done")
	p.Warning("careful")
	p.Error("broken")
	got := out.String()

	// The message text must survive even when ANSI codes are stripped.
	assert.Contains(t, got, "info 1")
	assert.Contains(t, got, "done")
	assert.Contains(t, got, "careful")
	assert.Contains(t, got, "broken")
}

func TestPlain_WritesToInjectedWriter(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out)

	p.Plain("URLs (press Enter to skip):")
	p.Plain("saved to %s", "/tmp/apps.md")
	p.Plain("")

	assert.Equal(t, "URLs (press Enter to skip):\nsaved to /tmp/apps.md\n\n", out.String())
}
