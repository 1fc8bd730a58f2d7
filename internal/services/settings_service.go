package services

import (
	"context"
	"strings"

	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type SettingsServiceInterface interface {
	// HasAPIKey is a pure presence predicate: stored and not blank. It makes
	// no network call; the client uses it to gate the generate action.
	HasAPIKey(ctx context.Context) (bool, error)
	SaveAPIKey(ctx context.Context, apiKey string) error
	MaskedAPIKey(ctx context.Context) (string, error)
	DeleteAPIKey(ctx context.Context) error
}

func NewSettingsService(store repositories.KVRepositoryInterface) SettingsServiceInterface {
	return &SettingsService{store: store}
}

type SettingsService struct {
	store repositories.KVRepositoryInterface
}

func (s *SettingsService) HasAPIKey(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, StoreKeyAPIKey)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return ok && strings.TrimSpace(value) != "", nil
}

func (s *SettingsService) SaveAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return utils.ErrEmptyAPIKey
	}
	if err := s.store.Set(ctx, StoreKeyAPIKey, apiKey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// MaskedAPIKey returns a display form that never exposes the middle of the
// key. Empty string when no key is stored.
func (s *SettingsService) MaskedAPIKey(ctx context.Context) (string, error) {
	value, ok, err := s.store.Get(ctx, StoreKeyAPIKey)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", nil
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value)), nil
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:], nil
}

func (s *SettingsService) DeleteAPIKey(ctx context.Context) error {
	if err := s.store.Delete(ctx, StoreKeyAPIKey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
