package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, questionID, ownerID int64, content string) (*domain.Answer, error)
	UpdateContent(ctx context.Context, id, ownerID int64, content string) (*domain.Answer, error)
	Delete(ctx context.Context, id, ownerID int64) (*domain.Answer, error)
	FindByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Answer, error)
}
