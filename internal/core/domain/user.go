package domain

import "time"

// User is read-only in this service; accounts are provisioned externally and
// user_id values arriving in requests are trusted as supplied.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
