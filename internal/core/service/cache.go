package service

import (
	"context"
	"fmt"
)

// ListCache abstracts the best-effort read cache (Redis). Implementations
// must treat a missing key as (false, nil), not an error.
type ListCache interface {
	// Get unmarshals the cached value for key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Cache key layout. Every list read path has exactly one key, so mutations
// know precisely what to invalidate.
const keyFormsAll = "forms:all"

func keyQuestionsByForm(formID int64) string {
	return fmt.Sprintf("questions:form:%d", formID)
}

func keyAnswersByQuestion(questionID int64) string {
	return fmt.Sprintf("answers:question:%d", questionID)
}

func keyAnswersByUser(userID int64) string {
	return fmt.Sprintf("answers:user:%d", userID)
}
