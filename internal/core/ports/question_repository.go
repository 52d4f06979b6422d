package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	Create(ctx context.Context, formID, ownerID int64, content string) (*domain.Question, error)
	// UpdateContent rewrites the single mutable field, conditional on id and
	// ownerID matching in the same statement.
	UpdateContent(ctx context.Context, id, ownerID int64, content string) (*domain.Question, error)
	Delete(ctx context.Context, id, ownerID int64) (*domain.Question, error)
	FindByForm(ctx context.Context, formID int64) ([]domain.Question, error)
}
