package repository

import (
	"context"
	"errors"

	"github.com/casey/apptrack/internal/domain"
)

// ErrNotFound is returned when a referenced app id is absent from the collection.
var ErrNotFound = errors.New("app not found")

// AppInput carries the fields collected when creating an app. Empty URL
// values are dropped; an empty Status means the default (development).
type AppInput struct {
	Name        string
	Description string
	URLs        map[domain.Environment]string
	Repository  string
	TechStack   string
	Status      domain.Status
	Notes       string
}

// AppChanges is a partial update: nil fields keep their prior values. A
// non-nil URLs map replaces the whole slot map, dropping empty values.
type AppChanges struct {
	Name        *string
	Description *string
	URLs        map[domain.Environment]string
	Repository  *string
	TechStack   *string
	Status      *domain.Status
	Notes       *string
}

// AppRepository manages app persistence. Every operation loads the collection
// fresh from the store, and every mutating operation writes it back in full.
type AppRepository interface {
	Add(ctx context.Context, input AppInput) (*domain.App, error)
	Get(ctx context.Context, id string) (*domain.App, error)
	List(ctx context.Context, filterStatus domain.Status) ([]*domain.App, error)
	Update(ctx context.Context, id string, changes AppChanges) (*domain.App, error)
	Remove(ctx context.Context, id string) error
}
