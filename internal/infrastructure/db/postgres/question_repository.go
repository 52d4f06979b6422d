package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formworks/forms-api/internal/core/domain"
)

const questionColumns = "question_id, form_id, user_id, content, created_at, updated_at"

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// Create inserts a new question and returns the stored row. An unknown
// form_id fails the foreign key and surfaces as a store error.
func (r *QuestionRepository) Create(ctx context.Context, formID, ownerID int64, content string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"INSERT INTO questions (form_id, user_id, content) VALUES ($1, $2, $3) RETURNING "+questionColumns,
		formID, ownerID, content,
	)
	return scanQuestion(row)
}

// UpdateContent rewrites the single mutable field, conditional on id and
// owner matching in the same statement.
func (r *QuestionRepository) UpdateContent(ctx context.Context, id, ownerID int64, content string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"UPDATE questions SET content = $3, updated_at = now() WHERE question_id = $1 AND user_id = $2 RETURNING "+questionColumns,
		id, ownerID, content,
	)
	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// Delete removes the question when both id and owner match.
func (r *QuestionRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"DELETE FROM questions WHERE question_id = $1 AND user_id = $2 RETURNING "+questionColumns,
		id, ownerID,
	)
	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// FindByForm returns every question under the form, regardless of owner.
func (r *QuestionRepository) FindByForm(ctx context.Context, formID int64) ([]domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE form_id = $1 ORDER BY question_id",
		formID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.FormID, &q.OwnerID, &q.Content, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var q domain.Question
	if err := row.Scan(&q.ID, &q.FormID, &q.OwnerID, &q.Content, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}
