package domain

import "time"

// Answer belongs to a question. Same ownership rules as Question.
type Answer struct {
	ID         int64     `json:"answer_id"`
	QuestionID int64     `json:"question_id"`
	OwnerID    int64     `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
