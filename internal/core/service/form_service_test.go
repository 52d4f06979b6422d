package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubFormRepo struct {
	byID      map[int64]*domain.Form
	nextID    int64
	createErr error
	findErr   error
}

func newStubFormRepo() *stubFormRepo {
	return &stubFormRepo{byID: make(map[int64]*domain.Form)}
}

func (r *stubFormRepo) Create(_ context.Context, title, description string, ownerID int64) (*domain.Form, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	now := time.Now().UTC()
	f := &domain.Form{
		ID:          r.nextID,
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.byID[f.ID] = f
	clone := *f
	return &clone, nil
}

// UpdatePartial mirrors the real conditional statement: the row is touched
// only when both id and owner match.
func (r *stubFormRepo) UpdatePartial(_ context.Context, id, ownerID int64, patch domain.FormPatch) (*domain.Form, error) {
	f, ok := r.byID[id]
	if !ok || f.OwnerID != ownerID {
		return nil, domain.ErrFormNotFound
	}
	if patch.Title != nil {
		f.Title = *patch.Title
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	f.UpdatedAt = time.Now().UTC()
	clone := *f
	return &clone, nil
}

func (r *stubFormRepo) Delete(_ context.Context, id, ownerID int64) (*domain.Form, error) {
	f, ok := r.byID[id]
	if !ok || f.OwnerID != ownerID {
		return nil, domain.ErrFormNotFound
	}
	delete(r.byID, id)
	clone := *f
	return &clone, nil
}

func (r *stubFormRepo) FindAll(_ context.Context) ([]domain.Form, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	forms := []domain.Form{}
	for _, f := range r.byID {
		forms = append(forms, *f)
	}
	return forms, nil
}

// stubCache is a JSON map cache recording invalidations.
type stubCache struct {
	entries     map[string][]byte
	getErr      error
	setErr      error
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
		c.invalidated = append(c.invalidated, k)
	}
	return nil
}

var discardLogger = zerolog.Nop()

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestFormService_Create_Success(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)

	form, err := svc.Create(context.Background(), ports.CreateFormInput{
		Title: "T", Description: "D", OwnerID: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.ID == 0 {
		t.Error("expected an assigned id")
	}
	if form.OwnerID != 1 {
		t.Errorf("owner: want 1, got %d", form.OwnerID)
	}
	if form.CreatedAt.IsZero() || form.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestFormService_Create_InvalidatesListCache(t *testing.T) {
	repo := newStubFormRepo()
	cache := newStubCache()
	svc := NewFormService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), ports.CreateFormInput{Title: "T", OwnerID: 1})

	if len(cache.invalidated) != 1 || cache.invalidated[0] != keyFormsAll {
		t.Errorf("expected %q invalidated, got %v", keyFormsAll, cache.invalidated)
	}
}

func TestFormService_Create_RepoError(t *testing.T) {
	repo := newStubFormRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewFormService(repo, newStubCache(), discardLogger)

	_, err := svc.Create(context.Background(), ports.CreateFormInput{Title: "T", OwnerID: 1})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func seedForm(t *testing.T, svc ports.FormService, ownerID int64) *domain.Form {
	t.Helper()
	form, err := svc.Create(context.Background(), ports.CreateFormInput{
		Title: "T", Description: "D", OwnerID: ownerID,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return form
}

func TestFormService_Update_PartialLeavesOtherFieldsUntouched(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)
	seeded := seedForm(t, svc, 1)

	updated, err := svc.Update(context.Background(), ports.UpdateFormInput{
		FormID:      seeded.ID,
		OwnerID:     1,
		Description: strPtr("D2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "T" {
		t.Errorf("title must be untouched: want %q, got %q", "T", updated.Title)
	}
	if updated.Description != "D2" {
		t.Errorf("description: want %q, got %q", "D2", updated.Description)
	}
}

func TestFormService_Update_WrongOwnerIsNotFound(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)
	seeded := seedForm(t, svc, 1)

	_, err := svc.Update(context.Background(), ports.UpdateFormInput{
		FormID:  seeded.ID,
		OwnerID: 2,
		Title:   strPtr("hijacked"),
	})
	if !errors.Is(err, domain.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
	if repo.byID[seeded.ID].Title != "T" {
		t.Errorf("record must be unchanged, got title %q", repo.byID[seeded.ID].Title)
	}
}

func TestFormService_Update_MissingIDIsNotFound(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)

	_, err := svc.Update(context.Background(), ports.UpdateFormInput{
		FormID:  42,
		OwnerID: 1,
		Title:   strPtr("T"),
	})
	if !errors.Is(err, domain.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestFormService_Update_EmptyPatchRejected(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)
	seeded := seedForm(t, svc, 1)

	_, err := svc.Update(context.Background(), ports.UpdateFormInput{
		FormID:  seeded.ID,
		OwnerID: 1,
	})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestFormService_Delete_Success(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)
	seeded := seedForm(t, svc, 1)

	deleted, err := svc.Delete(context.Background(), seeded.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != seeded.ID {
		t.Errorf("deleted id: want %d, got %d", seeded.ID, deleted.ID)
	}
	if _, ok := repo.byID[seeded.ID]; ok {
		t.Error("record must be removed from the store")
	}
}

func TestFormService_Delete_WrongOwnerIsNotFound(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)
	seeded := seedForm(t, svc, 1)

	_, err := svc.Delete(context.Background(), seeded.ID, 99)
	if !errors.Is(err, domain.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
	if _, ok := repo.byID[seeded.ID]; !ok {
		t.Error("record must still exist")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestFormService_List_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo, newStubCache(), discardLogger)

	forms, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forms == nil || len(forms) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", forms)
	}
}

func TestFormService_List_PopulatesAndServesCache(t *testing.T) {
	repo := newStubFormRepo()
	cache := newStubCache()
	svc := NewFormService(repo, cache, discardLogger)
	seedForm(t, svc, 1)

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 form, got %d", len(first))
	}
	if _, ok := cache.entries[keyFormsAll]; !ok {
		t.Fatal("expected list cached after miss")
	}

	// Second read is served from the cache even if the store errors.
	repo.findErr = errors.New("store down")
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("expected cached form, got %d entries", len(second))
	}
}

func TestFormService_List_CacheErrorFallsBackToStore(t *testing.T) {
	repo := newStubFormRepo()
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewFormService(repo, cache, discardLogger)
	seedForm(t, svc, 1)

	forms, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 1 {
		t.Errorf("expected 1 form from store fallback, got %d", len(forms))
	}
}
