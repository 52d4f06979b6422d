package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// FormRepository defines persistence operations for forms.
type FormRepository interface {
	Create(ctx context.Context, title, description string, ownerID int64) (*domain.Form, error)
	// UpdatePartial applies only the fields present in patch, conditional on
	// id and ownerID matching in the same statement. Returns
	// domain.ErrFormNotFound when no row matched (absent id or wrong owner).
	UpdatePartial(ctx context.Context, id, ownerID int64, patch domain.FormPatch) (*domain.Form, error)
	// Delete removes the form when id and ownerID match, returning the
	// deleted record; domain.ErrFormNotFound otherwise.
	Delete(ctx context.Context, id, ownerID int64) (*domain.Form, error)
	FindAll(ctx context.Context) ([]domain.Form, error)
}
