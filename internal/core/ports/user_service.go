package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// UserService exposes the read-only user listing.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}
