package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// CreateAnswerInput carries all data needed to create an answer.
type CreateAnswerInput struct {
	QuestionID int64
	OwnerID    int64
	Content    string
}

// UpdateAnswerInput carries a content rewrite for an existing answer.
type UpdateAnswerInput struct {
	AnswerID int64
	OwnerID  int64
	Content  string
}

// AnswerService defines use-case operations for answers.
type AnswerService interface {
	Create(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error)
	Update(ctx context.Context, input UpdateAnswerInput) (*domain.Answer, error)
	Delete(ctx context.Context, answerID, ownerID int64) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Answer, error)
}
