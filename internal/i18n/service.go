// Package i18n serves locale strings from the translations table. The
// service is injected and holds explicit state: lookups fail with
// ErrNotReady until a locale has been loaded.
package i18n

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/hrunx/es2square/internal/repository"
)

// ErrNotReady is returned by Lookup before Load has populated the table.
var ErrNotReady = errors.New("translations not loaded")

type Service struct {
	repo   repository.TranslationRepository
	logger *slog.Logger

	mu     sync.RWMutex
	locale string
	table  map[string]string
}

func NewService(repo repository.TranslationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load fetches all strings for a locale and swaps the in-memory table.
func (s *Service) Load(ctx context.Context, locale string) error {
	ts, err := s.repo.ListByLocale(ctx, locale)
	if err != nil {
		return err
	}
	table := make(map[string]string, len(ts))
	for _, t := range ts {
		table[t.Key] = t.Value
	}

	s.mu.Lock()
	s.locale = locale
	s.table = table
	s.mu.Unlock()

	s.logger.Info("i18n.loaded", "locale", locale, "keys", len(table))
	return nil
}

// Locale returns the currently loaded locale, empty before Load.
func (s *Service) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// Lookup returns the loaded value for key, or the key itself when no
// translation exists. Before Load it returns ErrNotReady.
func (s *Service) Lookup(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return "", ErrNotReady
	}
	if v, ok := s.table[key]; ok {
		return v, nil
	}
	return key, nil
}

// All returns a copy of the loaded table. Before Load it returns ErrNotReady.
func (s *Service) All() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil, ErrNotReady
	}
	out := make(map[string]string, len(s.table))
	for k, v := range s.table {
		out[k] = v
	}
	return out, nil
}

// Store upserts one key and refreshes the in-memory copy when the locale
// matches the loaded one.
func (s *Service) Store(ctx context.Context, key, locale, value, kind string) error {
	if err := s.repo.Upsert(ctx, key, locale, value, kind); err != nil {
		return err
	}
	s.mu.Lock()
	if s.table != nil && s.locale == locale {
		s.table[key] = value
	}
	s.mu.Unlock()
	return nil
}
