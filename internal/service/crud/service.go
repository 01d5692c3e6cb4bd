package crud

import (
	"context"
	"errors"
	"fmt"

	"fidelite-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when the caller asks for none.
	DefaultLimit = 100
	// MaxLimit bounds every page.
	MaxLimit = 100
)

// ValidationError is a business rule violation reported back to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid returns a *ValidationError carrying msg.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// Rules validates and normalizes payloads before they reach storage.
type Rules[E, P any] interface {
	PrepareCreate(e E) (E, error)
	PreparePatch(p P) (P, error)
}

// NoRules accepts every payload unchanged.
type NoRules[E, P any] struct{}

func (NoRules[E, P]) PrepareCreate(e E) (E, error) { return e, nil }
func (NoRules[E, P]) PreparePatch(p P) (P, error)  { return p, nil }

// Service exposes list/get/create/patch/delete for one entity.
type Service[E, P any, K comparable] struct {
	entity string
	repo   repository.Repository[E, P, K]
	rules  Rules[E, P]
	logger *zap.Logger
}

// New builds a Service. A nil rules value means NoRules, a nil logger discards output.
func New[E, P any, K comparable](entity string, repo repository.Repository[E, P, K], rules Rules[E, P], logger *zap.Logger) *Service[E, P, K] {
	if rules == nil {
		rules = NoRules[E, P]{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service[E, P, K]{
		entity: entity,
		repo:   repo,
		rules:  rules,
		logger: logger.With(zap.String("entity", entity)),
	}
}

// Entity returns the name the service was registered under.
func (s *Service[E, P, K]) Entity() string { return s.entity }

// List returns one page. The limit is clamped to MaxLimit and a negative offset reads
// from the start.
func (s *Service[E, P, K]) List(ctx context.Context, limit, offset int) ([]E, error) {
	if limit < 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return items, nil
}

func (s *Service[E, P, K]) Get(ctx context.Context, id K) (*E, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.entity, err)
	}
	return e, nil
}

func (s *Service[E, P, K]) Create(ctx context.Context, e E) (*E, error) {
	prepared, err := s.rules.PrepareCreate(e)
	if err != nil {
		s.logger.Debug("create rejected", zap.Error(err))
		return nil, err
	}
	created, err := s.repo.Create(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.entity, err)
	}
	return created, nil
}

// Patch applies the fields present in p. A missing row wins over an invalid payload.
func (s *Service[E, P, K]) Patch(ctx context.Context, id K, p P) (*E, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("patch %s: %w", s.entity, err)
	}
	prepared, err := s.rules.PreparePatch(p)
	if err != nil {
		s.logger.Debug("patch rejected", zap.Any("id", id), zap.Error(err))
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, prepared)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", s.entity, err)
	}
	return updated, nil
}

func (s *Service[E, P, K]) Delete(ctx context.Context, id K) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}
	return nil
}
