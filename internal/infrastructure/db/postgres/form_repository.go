package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formworks/forms-api/internal/core/domain"
)

const formColumns = "form_id, title, description, user_id, created_at, updated_at"

type FormRepository struct {
	pool *pgxpool.Pool
}

func NewFormRepository(pool *pgxpool.Pool) *FormRepository {
	return &FormRepository{pool: pool}
}

// Create inserts a new form and returns the stored row.
func (r *FormRepository) Create(ctx context.Context, title, description string, ownerID int64) (*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"INSERT INTO forms (title, description, user_id) VALUES ($1, $2, $3) RETURNING "+formColumns,
		title, description, ownerID,
	)
	return scanForm(row)
}

// UpdatePartial writes only the fields present in patch. The WHERE clause
// fuses the ownership check with the mutation: a row is touched only when
// both id and owner match, so there is no read-then-write race. Zero rows
// matched collapses "absent id" and "wrong owner" into ErrFormNotFound.
func (r *FormRepository) UpdatePartial(ctx context.Context, id, ownerID int64, patch domain.FormPatch) (*domain.Form, error) {
	fields := make([]fieldValue, 0, 2)
	if patch.Title != nil {
		fields = append(fields, fieldValue{"title", *patch.Title})
	}
	if patch.Description != nil {
		fields = append(fields, fieldValue{"description", *patch.Description})
	}
	if len(fields) == 0 {
		// Without this guard the generated statement would have no SET list.
		return nil, domain.ErrEmptyUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clause, args := setClause(fields, 3)
	sql := "UPDATE forms SET " + clause + ", updated_at = now()" +
		" WHERE form_id = $1 AND user_id = $2 RETURNING " + formColumns

	row := r.pool.QueryRow(ctx, sql, append([]any{id, ownerID}, args...)...)
	form, err := scanForm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// Delete removes the form when both id and owner match, returning the
// deleted row.
func (r *FormRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"DELETE FROM forms WHERE form_id = $1 AND user_id = $2 RETURNING "+formColumns,
		id, ownerID,
	)
	form, err := scanForm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// FindAll returns every form. No owner filter: reads are unscoped.
func (r *FormRepository) FindAll(ctx context.Context) ([]domain.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, "SELECT "+formColumns+" FROM forms ORDER BY form_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := []domain.Form{}
	for rows.Next() {
		var f domain.Form
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}

func scanForm(row pgx.Row) (*domain.Form, error) {
	var f domain.Form
	if err := row.Scan(&f.ID, &f.Title, &f.Description, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
