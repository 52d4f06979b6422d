package domain

import "time"

// Question belongs to a form. OwnerID is the creating user and is independent
// of the parent form's owner; no consistency between the two is enforced.
type Question struct {
	ID        int64     `json:"question_id"`
	FormID    int64     `json:"form_id"`
	OwnerID   int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
