package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// CreateQuestionInput carries all data needed to create a question.
type CreateQuestionInput struct {
	FormID  int64
	OwnerID int64
	Content string
}

// UpdateQuestionInput carries a content rewrite for an existing question.
type UpdateQuestionInput struct {
	QuestionID int64
	OwnerID    int64
	Content    string
}

// QuestionService defines use-case operations for questions.
type QuestionService interface {
	Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	Update(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error)
	Delete(ctx context.Context, questionID, ownerID int64) (*domain.Question, error)
	ListByForm(ctx context.Context, formID int64) ([]domain.Question, error)
}
