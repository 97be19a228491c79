package domain

import (
	"errors"
	"strings"
	"time"
)

// App is one tracked application in the inventory.
type App struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	URLs        map[Environment]string `json:"urls"`
	Repository  string                 `json:"repository"`
	TechStack   string                 `json:"tech_stack"`
	Status      Status                 `json:"status"`
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// Collection is the full ordered set of apps, persisted as one document.
type Collection struct {
	Apps []*App `json:"apps"`
}

// NewCollection returns an empty collection ready for use.
func NewCollection() *Collection {
	return &Collection{Apps: []*App{}}
}

// Find returns the app with the given id, or nil if absent.
func (c *Collection) Find(id string) *App {
	for _, a := range c.Apps {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// IDs returns all ids in collection order.
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.Apps))
	for _, a := range c.Apps {
		ids = append(ids, a.ID)
	}
	return ids
}

// NewApp creates an app with a pre-generated id. Both timestamps are set to
// now; URLs is never nil so the document serializes the field as {}.
func NewApp(id, name string) *App {
	now := time.Now()
	return &App{
		ID:        id,
		Name:      strings.TrimSpace(name),
		URLs:      map[Environment]string{},
		Status:    StatusDevelopment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate returns an error if the app is invalid
func (a *App) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("app name is required")
	}
	if !a.Status.Valid() {
		return errors.New("unknown status: " + string(a.Status))
	}
	return nil
}

// SetURL stores a URL for an environment slot. Empty values remove the slot
// entirely rather than being stored as empty strings.
func (a *App) SetURL(env Environment, url string) {
	if a.URLs == nil {
		a.URLs = map[Environment]string{}
	}
	url = strings.TrimSpace(url)
	if url == "" {
		delete(a.URLs, env)
		return
	}
	a.URLs[env] = url
}

// Touch refreshes the updated_at timestamp.
func (a *App) Touch() {
	a.UpdatedAt = time.Now()
}
