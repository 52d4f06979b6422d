package ports

import (
	"context"

	"github.com/formworks/forms-api/internal/core/domain"
)

// CreateFormInput carries all data needed to create a new form.
type CreateFormInput struct {
	Title       string
	Description string
	OwnerID     int64
}

// UpdateFormInput carries a partial form update. Nil fields are not touched.
type UpdateFormInput struct {
	FormID      int64
	OwnerID     int64
	Title       *string
	Description *string
}

// FormService defines use-case operations for forms.
type FormService interface {
	Create(ctx context.Context, input CreateFormInput) (*domain.Form, error)
	Update(ctx context.Context, input UpdateFormInput) (*domain.Form, error)
	Delete(ctx context.Context, formID, ownerID int64) (*domain.Form, error)
	List(ctx context.Context) ([]domain.Form, error)
}
