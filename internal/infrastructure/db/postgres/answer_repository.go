package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formworks/forms-api/internal/core/domain"
)

const answerColumns = "answer_id, question_id, user_id, content, created_at, updated_at"

type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

// Create inserts a new answer and returns the stored row.
func (r *AnswerRepository) Create(ctx context.Context, questionID, ownerID int64, content string) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"INSERT INTO answers (question_id, user_id, content) VALUES ($1, $2, $3) RETURNING "+answerColumns,
		questionID, ownerID, content,
	)
	return scanAnswer(row)
}

// UpdateContent rewrites the single mutable field, conditional on id and
// owner matching in the same statement.
func (r *AnswerRepository) UpdateContent(ctx context.Context, id, ownerID int64, content string) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"UPDATE answers SET content = $3, updated_at = now() WHERE answer_id = $1 AND user_id = $2 RETURNING "+answerColumns,
		id, ownerID, content,
	)
	answer, err := scanAnswer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, err
	}
	return answer, nil
}

// Delete removes the answer when both id and owner match.
func (r *AnswerRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"DELETE FROM answers WHERE answer_id = $1 AND user_id = $2 RETURNING "+answerColumns,
		id, ownerID,
	)
	answer, err := scanAnswer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, err
	}
	return answer, nil
}

// FindByQuestion returns every answer under the question, regardless of owner.
func (r *AnswerRepository) FindByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return r.findBy(ctx, "question_id", questionID)
}

// FindByUser returns every answer a user has written.
func (r *AnswerRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Answer, error) {
	return r.findBy(ctx, "user_id", userID)
}

func (r *AnswerRepository) findBy(ctx context.Context, column string, value int64) ([]domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		"SELECT "+answerColumns+" FROM answers WHERE "+column+" = $1 ORDER BY answer_id",
		value,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []domain.Answer{}
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.OwnerID, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func scanAnswer(row pgx.Row) (*domain.Answer, error) {
	var a domain.Answer
	if err := row.Scan(&a.ID, &a.QuestionID, &a.OwnerID, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
