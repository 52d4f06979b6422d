package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// UserRepository exposes the read-only user view.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
}
