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

type FormService struct {
	repo   ports.FormRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewFormService(repo ports.FormRepository, cache ListCache, logger zerolog.Logger) *FormService {
	return &FormService{repo: repo, cache: cache, logger: logger}
}

// Create inserts a new form owned by input.OwnerID.
func (s *FormService) Create(ctx context.Context, input ports.CreateFormInput) (*domain.Form, error) {
	form, err := s.repo.Create(ctx, input.Title, input.Description, input.OwnerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", input.OwnerID).Msg("failed to create form")
		return nil, err
	}

	s.invalidate(ctx, keyFormsAll)
	metrics.MutationsTotal.WithLabelValues("form", "create").Inc()
	s.logger.Info().Int64("form_id", form.ID).Int64("owner_id", form.OwnerID).Msg("form created")
	return form, nil
}

// Update applies a partial update. Only the fields present in the input are
// written; the statement itself enforces that input.OwnerID owns the form.
// An empty patch is rejected before any store access.
func (s *FormService) Update(ctx context.Context, input ports.UpdateFormInput) (*domain.Form, error) {
	patch := domain.FormPatch{Title: input.Title, Description: input.Description}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	form, err := s.repo.UpdatePartial(ctx, input.FormID, input.OwnerID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("form", "update").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("update form: %w", err)
	}

	s.invalidate(ctx, keyFormsAll)
	metrics.MutationsTotal.WithLabelValues("form", "update").Inc()
	s.logger.Info().Int64("form_id", form.ID).Msg("form updated")
	return form, nil
}

// Delete removes the form when input.OwnerID owns it.
func (s *FormService) Delete(ctx context.Context, formID, ownerID int64) (*domain.Form, error) {
	form, err := s.repo.Delete(ctx, formID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			metrics.OwnershipRejectionsTotal.WithLabelValues("form", "delete").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("delete form: %w", err)
	}

	s.invalidate(ctx, keyFormsAll)
	metrics.MutationsTotal.WithLabelValues("form", "delete").Inc()
	s.logger.Info().Int64("form_id", form.ID).Msg("form deleted")
	return form, nil
}

// List returns every form regardless of owner. Cache failures fall back to
// the store.
func (s *FormService) List(ctx context.Context) ([]domain.Form, error) {
	var cached []domain.Form
	hit, err := s.cache.Get(ctx, keyFormsAll, &cached)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("form", "error").Inc()
		s.logger.Warn().Err(err).Msg("form list cache read failed, falling back to store")
	case hit:
		metrics.CacheLookupsTotal.WithLabelValues("form", "hit").Inc()
		return cached, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("form", "miss").Inc()
	}

	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	if err := s.cache.Set(ctx, keyFormsAll, forms); err != nil {
		s.logger.Warn().Err(err).Msg("form list cache write failed")
	}
	return forms, nil
}

func (s *FormService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
