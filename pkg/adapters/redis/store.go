// Package redis provides a Redis-backed page store, useful when a
// server-side renderer shares its page cache across replicas.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/urlutil"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.PageStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for pages.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "swup:page:",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(url string) string {
	return s.prefix + urlutil.Normalize(url)
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Set persists the page to Redis.
func (s *Store) Set(ctx context.Context, url string, page *domain.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	key := s.key(url)

	// The index set makes Empty cheap without a SCAN over the keyspace.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, s.indexKey(), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves the page from Redis.
func (s *Store) Get(ctx context.Context, url string) (*domain.Page, error) {
	val, err := s.client.Get(ctx, s.key(url)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var page domain.Page
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}

	return &page, nil
}

// Empty removes every cached page.
func (s *Store) Empty(ctx context.Context) error {
	keys, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached pages: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, keys...)
	pipe.Del(ctx, s.indexKey())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to empty redis store: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
