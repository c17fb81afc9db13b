// Package memory provides the default in-process page store.
package memory

import (
	"context"
	"sync"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/urlutil"
)

// Store implements ports.PageStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Page
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Page),
	}
}

// Set upserts the page under its normalized URL key.
func (s *Store) Set(ctx context.Context, url string, page *domain.Page) error {
	// Copy on write so the caller's page stays owned by its navigation.
	copied := page.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[urlutil.Normalize(url)] = copied
	return nil
}

// Get retrieves the page for a URL.
func (s *Store) Get(ctx context.Context, url string) (*domain.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.data[urlutil.Normalize(url)]
	if !ok {
		return nil, domain.ErrPageNotFound
	}

	// Copy on read so the caller can't mutate store state by pointer.
	return page.Clone(), nil
}

// Empty removes all entries.
func (s *Store) Empty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]*domain.Page)
	return nil
}

// Len returns the number of cached pages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
