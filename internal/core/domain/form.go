package domain

import (
	"errors"
	"time"
)

var ErrFormNotFound = errors.New("form not found or owner mismatch")
var ErrQuestionNotFound = errors.New("question not found or owner mismatch")
var ErrAnswerNotFound = errors.New("answer not found or owner mismatch")
var ErrEmptyUpdate = errors.New("update contains no fields")

// Form is the root of the hierarchy. OwnerID is set at creation and never
// changes; a form is readable by anyone but mutable only by its owner.
type Form struct {
	ID          int64     `json:"form_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FormPatch carries the fields of a partial form update. A nil field is left
// untouched in the stored record.
type FormPatch struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the patch would change nothing.
func (p FormPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}
