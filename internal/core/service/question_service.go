package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/formworks/forms-api/internal/api/metrics"
	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

type QuestionService struct {
	repo   ports.QuestionRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, cache ListCache, logger zerolog.Logger) *QuestionService {
	return &QuestionService{repo: repo, cache: cache, logger: logger}
}

// Create inserts a new question under input.FormID. A non-existent parent
// form surfaces as a store failure (foreign key violation), not a 404.
func (s *QuestionService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	question, err := s.repo.Create(ctx, input.FormID, input.OwnerID, input.Content)
	if err != nil {
		s.logger.Error().Err(err).Int64("form_id", input.FormID).Msg("failed to create question")
		return nil, err
	}

	s.invalidate(ctx, keyQuestionsByForm(question.FormID))
	metrics.MutationsTotal.WithLabelValues("question", "create").Inc()
	s.logger.Info().Int64("question_id", question.ID).Int64("form_id", question.FormID).Msg("question created")
	return question, nil
}

// Update rewrites the question's content when input.OwnerID owns it. Content
// presence is enforced at the boundary, so a blank rewrite never reaches the
// store.
func (s *QuestionService) Update(ctx context.Context, input ports.UpdateQuestionInput) (*domain.Question, error) {
	question, err := s.repo.UpdateContent(ctx, input.QuestionID, input.OwnerID, input.Content)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("question", "update").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("update question: %w", err)
	}

	s.invalidate(ctx, keyQuestionsByForm(question.FormID))
	metrics.MutationsTotal.WithLabelValues("question", "update").Inc()
	s.logger.Info().Int64("question_id", question.ID).Msg("question updated")
	return question, nil
}

// Delete removes the question when input.OwnerID owns it.
func (s *QuestionService) Delete(ctx context.Context, questionID, ownerID int64) (*domain.Question, error) {
	question, err := s.repo.Delete(ctx, questionID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("question", "delete").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("delete question: %w", err)
	}

	s.invalidate(ctx, keyQuestionsByForm(question.FormID))
	metrics.MutationsTotal.WithLabelValues("question", "delete").Inc()
	s.logger.Info().Int64("question_id", question.ID).Msg("question deleted")
	return question, nil
}

// ListByForm returns every question under a form, regardless of owner.
func (s *QuestionService) ListByForm(ctx context.Context, formID int64) ([]domain.Question, error) {
	key := keyQuestionsByForm(formID)

	var cached []domain.Question
	hit, err := s.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("question", "error").Inc()
		s.logger.Warn().Err(err).Msg("question list cache read failed, falling back to store")
	case hit:
		metrics.CacheLookupsTotal.WithLabelValues("question", "hit").Inc()
		return cached, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("question", "miss").Inc()
	}

	questions, err := s.repo.FindByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	if err := s.cache.Set(ctx, key, questions); err != nil {
		s.logger.Warn().Err(err).Msg("question list cache write failed")
	}
	return questions, nil
}

func (s *QuestionService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
