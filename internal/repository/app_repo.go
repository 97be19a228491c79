package repository

import (
	"context"
	"fmt"

	"github.com/casey/apptrack/internal/domain"
	"github.com/casey/apptrack/internal/store"
)

// AppRepo is a file-backed implementation of AppRepository.
type AppRepo struct {
	store *store.Store
}

// NewAppRepo creates a new AppRepo
func NewAppRepo(s *store.Store) *AppRepo {
	return &AppRepo{store: s}
}

// Add builds a new app from the input, assigns it a unique id derived from
// the name, appends it to the collection, and persists.
func (r *AppRepo) Add(ctx context.Context, input AppInput) (*domain.App, error) {
	col, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	app := domain.NewApp(domain.GenerateID(input.Name, col.IDs()), input.Name)
	app.Description = input.Description
	app.Repository = input.Repository
	app.TechStack = input.TechStack
	app.Notes = input.Notes
	if input.Status != "" {
		app.Status = input.Status
	}
	for env, url := range input.URLs {
		app.SetURL(env, url)
	}

	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app: %w", err)
	}

	col.Apps = append(col.Apps, app)
	if err := r.store.Save(col); err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}
	return app, nil
}

// Get retrieves an app by exact id match.
func (r *AppRepo) Get(ctx context.Context, id string) (*domain.App, error) {
	col, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	app := col.Find(id)
	if app == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return app, nil
}

// List returns all apps in collection order, or only those matching
// filterStatus when it is non-empty.
func (r *AppRepo) List(ctx context.Context, filterStatus domain.Status) ([]*domain.App, error) {
	col, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if filterStatus == "" {
		return col.Apps, nil
	}
	apps := make([]*domain.App, 0, len(col.Apps))
	for _, a := range col.Apps {
		if a.Status == filterStatus {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

// Update applies only the explicitly supplied fields to an existing app,
// refreshes updated_at, and persists. The id is immutable.
func (r *AppRepo) Update(ctx context.Context, id string, changes AppChanges) (*domain.App, error) {
	col, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	app := col.Find(id)
	if app == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if changes.Name != nil {
		app.Name = *changes.Name
	}
	if changes.Description != nil {
		app.Description = *changes.Description
	}
	if changes.Repository != nil {
		app.Repository = *changes.Repository
	}
	if changes.TechStack != nil {
		app.TechStack = *changes.TechStack
	}
	if changes.Status != nil {
		app.Status = *changes.Status
	}
	if changes.Notes != nil {
		app.Notes = *changes.Notes
	}
	if changes.URLs != nil {
		app.URLs = map[domain.Environment]string{}
		for env, url := range changes.URLs {
			app.SetURL(env, url)
		}
	}

	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app: %w", err)
	}

	app.Touch()
	if err := r.store.Save(col); err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}
	return app, nil
}

// Remove deletes an app and persists the reduced collection. Confirmation is
// the caller's contract; the repository deletes unconditionally.
func (r *AppRepo) Remove(ctx context.Context, id string) error {
	col, err := r.store.Load()
	if err != nil {
		return err
	}
	if col.Find(id) == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	apps := make([]*domain.App, 0, len(col.Apps)-1)
	for _, a := range col.Apps {
		if a.ID != id {
			apps = append(apps, a)
		}
	}
	col.Apps = apps

	if err := r.store.Save(col); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}
