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

type AnswerService struct {
	repo   ports.AnswerRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewAnswerService(repo ports.AnswerRepository, cache ListCache, logger zerolog.Logger) *AnswerService {
	return &AnswerService{repo: repo, cache: cache, logger: logger}
}

// Create inserts a new answer under input.QuestionID.
func (s *AnswerService) Create(ctx context.Context, input ports.CreateAnswerInput) (*domain.Answer, error) {
	answer, err := s.repo.Create(ctx, input.QuestionID, input.OwnerID, input.Content)
	if err != nil {
		s.logger.Error().Err(err).Int64("question_id", input.QuestionID).Msg("failed to create answer")
		return nil, err
	}

	s.invalidate(ctx, keyAnswersByQuestion(answer.QuestionID), keyAnswersByUser(answer.OwnerID))
	metrics.MutationsTotal.WithLabelValues("answer", "create").Inc()
	s.logger.Info().Int64("answer_id", answer.ID).Int64("question_id", answer.QuestionID).Msg("answer created")
	return answer, nil
}

// Update rewrites the answer's content when input.OwnerID owns it.
func (s *AnswerService) Update(ctx context.Context, input ports.UpdateAnswerInput) (*domain.Answer, error) {
	answer, err := s.repo.UpdateContent(ctx, input.AnswerID, input.OwnerID, input.Content)
	if err != nil {
		if errors.Is(err, domain.ErrAnswerNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("answer", "update").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("update answer: %w", err)
	}

	s.invalidate(ctx, keyAnswersByQuestion(answer.QuestionID), keyAnswersByUser(answer.OwnerID))
	metrics.MutationsTotal.WithLabelValues("answer", "update").Inc()
	s.logger.Info().Int64("answer_id", answer.ID).Msg("answer updated")
	return answer, nil
}

// Delete removes the answer when ownerID owns it.
func (s *AnswerService) Delete(ctx context.Context, answerID, ownerID int64) (*domain.Answer, error) {
	answer, err := s.repo.Delete(ctx, answerID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrAnswerNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("answer", "delete").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("delete answer: %w", err)
	}

	s.invalidate(ctx, keyAnswersByQuestion(answer.QuestionID), keyAnswersByUser(answer.OwnerID))
	metrics.MutationsTotal.WithLabelValues("answer", "delete").Inc()
	s.logger.Info().Int64("answer_id", answer.ID).Msg("answer deleted")
	return answer, nil
}

// ListByQuestion returns every answer under a question, regardless of owner.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return s.list(ctx, keyAnswersByQuestion(questionID), func(ctx context.Context) ([]domain.Answer, error) {
		return s.repo.FindByQuestion(ctx, questionID)
	})
}

// ListByUser returns every answer a user has written, across all questions.
func (s *AnswerService) ListByUser(ctx context.Context, userID int64) ([]domain.Answer, error) {
	return s.list(ctx, keyAnswersByUser(userID), func(ctx context.Context) ([]domain.Answer, error) {
		return s.repo.FindByUser(ctx, userID)
	})
}

func (s *AnswerService) list(ctx context.Context, key string, load func(context.Context) ([]domain.Answer, error)) ([]domain.Answer, error) {
	var cached []domain.Answer
	hit, err := s.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("answer", "error").Inc()
		s.logger.Warn().Err(err).Msg("answer list cache read failed, falling back to store")
	case hit:
		metrics.CacheLookupsTotal.WithLabelValues("answer", "hit").Inc()
		return cached, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("answer", "miss").Inc()
	}

	answers, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	if err := s.cache.Set(ctx, key, answers); err != nil {
		s.logger.Warn().Err(err).Msg("answer list cache write failed")
	}
	return answers, nil
}

func (s *AnswerService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
