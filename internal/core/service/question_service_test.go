package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

type stubQuestionRepo struct {
	byID      map[int64]*domain.Question
	nextID    int64
	createErr error
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{byID: make(map[int64]*domain.Question)}
}

func (r *stubQuestionRepo) Create(_ context.Context, formID, ownerID int64, content string) (*domain.Question, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	now := time.Now().UTC()
	q := &domain.Question{
		ID:        r.nextID,
		FormID:    formID,
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byID[q.ID] = q
	clone := *q
	return &clone, nil
}

func (r *stubQuestionRepo) UpdateContent(_ context.Context, id, ownerID int64, content string) (*domain.Question, error) {
	q, ok := r.byID[id]
	if !ok || q.OwnerID != ownerID {
		return nil, domain.ErrQuestionNotFound
	}
	q.Content = content
	q.UpdatedAt = time.Now().UTC()
	clone := *q
	return &clone, nil
}

func (r *stubQuestionRepo) Delete(_ context.Context, id, ownerID int64) (*domain.Question, error) {
	q, ok := r.byID[id]
	if !ok || q.OwnerID != ownerID {
		return nil, domain.ErrQuestionNotFound
	}
	delete(r.byID, id)
	clone := *q
	return &clone, nil
}

func (r *stubQuestionRepo) FindByForm(_ context.Context, formID int64) ([]domain.Question, error) {
	questions := []domain.Question{}
	for _, q := range r.byID {
		if q.FormID == formID {
			questions = append(questions, *q)
		}
	}
	return questions, nil
}

func TestQuestionService_Create_Success(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)

	question, err := svc.Create(context.Background(), ports.CreateQuestionInput{
		FormID: 1, OwnerID: 1, Content: "What is your name?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.ID == 0 {
		t.Error("expected an assigned id")
	}
	if question.FormID != 1 || question.OwnerID != 1 {
		t.Errorf("unexpected parent/owner: %+v", question)
	}
}

func TestQuestionService_Create_InvalidatesFormListing(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := newStubCache()
	svc := NewQuestionService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 7, OwnerID: 1, Content: "Q"})

	want := keyQuestionsByForm(7)
	if len(cache.invalidated) != 1 || cache.invalidated[0] != want {
		t.Errorf("expected %q invalidated, got %v", want, cache.invalidated)
	}
}

func TestQuestionService_Update_RewritesContent(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)
	seeded, _ := svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 1, OwnerID: 1, Content: "old"})

	updated, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		QuestionID: seeded.ID, OwnerID: 1, Content: "new",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "new" {
		t.Errorf("content: want %q, got %q", "new", updated.Content)
	}
}

func TestQuestionService_Update_WrongOwnerIsNotFound(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)
	seeded, _ := svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 1, OwnerID: 1, Content: "old"})

	_, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		QuestionID: seeded.ID, OwnerID: 2, Content: "hijacked",
	})
	if !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if repo.byID[seeded.ID].Content != "old" {
		t.Errorf("record must be unchanged, got %q", repo.byID[seeded.ID].Content)
	}
}

func TestQuestionService_Delete_WrongOwnerIsNotFound(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)
	seeded, _ := svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 1, OwnerID: 1, Content: "Q"})

	if _, err := svc.Delete(context.Background(), seeded.ID, 2); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if _, ok := repo.byID[seeded.ID]; !ok {
		t.Error("record must still exist")
	}
}

func TestQuestionService_ListByForm_FiltersByParent(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)

	_, _ = svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 1, OwnerID: 1, Content: "A"})
	_, _ = svc.Create(context.Background(), ports.CreateQuestionInput{FormID: 2, OwnerID: 1, Content: "B"})

	questions, err := svc.ListByForm(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected exactly 1 question for form 1, got %d", len(questions))
	}
	if questions[0].Content != "A" {
		t.Errorf("content: want %q, got %q", "A", questions[0].Content)
	}
}

func TestQuestionService_ListByForm_EmptyIsNotAnError(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, newStubCache(), discardLogger)

	questions, err := svc.ListByForm(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions == nil || len(questions) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", questions)
	}
}
