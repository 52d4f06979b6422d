package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. Foreign keys are plain
// references: deleting a form does not cascade to its questions.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id    BIGSERIAL PRIMARY KEY,
	username   TEXT NOT NULL,
	email      TEXT NOT NULL,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS forms (
	form_id     BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	user_id     BIGINT NOT NULL REFERENCES users (user_id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS questions (
	question_id BIGSERIAL PRIMARY KEY,
	form_id     BIGINT NOT NULL REFERENCES forms (form_id),
	user_id     BIGINT NOT NULL REFERENCES users (user_id),
	content     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS answers (
	answer_id   BIGSERIAL PRIMARY KEY,
	question_id BIGINT NOT NULL REFERENCES questions (question_id),
	user_id     BIGINT NOT NULL REFERENCES users (user_id),
	content     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_questions_form_id ON questions (form_id);
CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id);
CREATE INDEX IF NOT EXISTS idx_answers_user_id ON answers (user_id);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, schema)
	return err
}
