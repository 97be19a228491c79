package repository

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/casey/apptrack/internal/domain"
	"github.com/casey/apptrack/internal/store"
)

func newTestRepo(t *testing.T) *AppRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apps.json")
	return NewAppRepo(store.NewWithWarnings(path, io.Discard))
}

func TestAdd_DuplicateNamesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first, err := repo.Add(ctx, AppInput{Name: "My App"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Add(ctx, AppInput{Name: "My App"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != "my-app" {
		t.Fatalf("expected id my-app, got %s", first.ID)
	}
	if second.ID != "my-app-1" {
		t.Fatalf("expected id my-app-1, got %s", second.ID)
	}
}

func TestAdd_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app, err := repo.Add(ctx, AppInput{
		Name: "My App",
		URLs: map[domain.Environment]string{
			domain.EnvProduction: "https://example.com",
			domain.EnvStaging:    "", // skipped at the prompt
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Status != domain.StatusDevelopment {
		t.Fatalf("expected default status development, got %s", app.Status)
	}
	if len(app.URLs) != 1 || app.URLs[domain.EnvProduction] != "https://example.com" {
		t.Fatalf("expected only the production url to be stored, got %v", app.URLs)
	}
	if app.CreatedAt.IsZero() || !app.CreatedAt.Equal(app.UpdatedAt) {
		t.Fatalf("expected matching creation timestamps, got %v / %v", app.CreatedAt, app.UpdatedAt)
	}
}

func TestAdd_EmptyNameFails(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Add(ctx, AppInput{Name: "   "}); err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Get(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_FilterPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	prod := domain.StatusProduction
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if _, err := repo.Add(ctx, AppInput{Name: name, Status: prod}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := repo.Add(ctx, AppInput{Name: "Delta"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apps, err := repo.List(ctx, prod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 3 {
		t.Fatalf("expected 3 production apps, got %d", len(apps))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		if apps[i].Name != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, apps[i].Name)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 apps without a filter, got %d", len(all))
	}
}

func TestUpdate_PartialMergeKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app, err := repo.Add(ctx, AppInput{
		Name:      "My App",
		TechStack: "Go/cobra",
		URLs:      map[domain.Environment]string{domain.EnvProduction: "https://example.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := app.CreatedAt

	time.Sleep(10 * time.Millisecond)

	notes := "remember the thing"
	updated, err := repo.Update(ctx, app.ID, AppChanges{Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Notes != notes {
		t.Fatalf("expected notes to change, got %q", updated.Notes)
	}
	if updated.Name != "My App" || updated.TechStack != "Go/cobra" {
		t.Fatalf("unset fields were clobbered: %+v", updated)
	}
	if updated.URLs[domain.EnvProduction] != "https://example.com" {
		t.Fatalf("urls were clobbered: %v", updated.URLs)
	}
	if updated.Status != domain.StatusDevelopment {
		t.Fatalf("status was clobbered: %s", updated.Status)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatal("created_at must be immutable")
	}
	if !updated.UpdatedAt.After(created) {
		t.Fatal("updated_at must be refreshed on edit")
	}
}

func TestUpdate_URLsReplaceAndClear(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app, err := repo.Add(ctx, AppInput{
		Name: "My App",
		URLs: map[domain.Environment]string{
			domain.EnvProduction: "https://example.com",
			domain.EnvStaging:    "https://staging.example.com",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rebuild the slot map: staging cleared, development added.
	updated, err := repo.Update(ctx, app.ID, AppChanges{
		URLs: map[domain.Environment]string{
			domain.EnvProduction:  "https://example.com",
			domain.EnvStaging:     "",
			domain.EnvDevelopment: "http://localhost:8080",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := updated.URLs[domain.EnvStaging]; ok {
		t.Fatalf("cleared slot must be removed, got %v", updated.URLs)
	}
	if len(updated.URLs) != 2 {
		t.Fatalf("expected 2 url slots, got %v", updated.URLs)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	name := "x"
	if _, err := repo.Update(ctx, "nope", AppChanges{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app, err := repo.Add(ctx, AppInput{Name: "My App"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Add(ctx, AppInput{Name: "Other"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Remove(ctx, app.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apps, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 || apps[0].Name != "Other" {
		t.Fatalf("expected only Other to remain, got %+v", apps)
	}

	if err := repo.Remove(ctx, app.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestMutations_PersistAcrossRepositories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "apps.json")

	repo := NewAppRepo(store.NewWithWarnings(path, io.Discard))
	if _, err := repo.Add(ctx, AppInput{Name: "My App"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh repository over the same file sees the saved collection.
	fresh := NewAppRepo(store.NewWithWarnings(path, io.Discard))
	apps, err := fresh.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "my-app" {
		t.Fatalf("expected persisted app, got %+v", apps)
	}
}
