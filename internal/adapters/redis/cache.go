// Package redis provides an optional response cache for generated diagrams.
// The repair pipeline itself stays stateless; the cache sits entirely in the
// serving layer and is only wired when an address is configured.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/archwize/archwize/pkg/mermaid"
)

// Cache stores rendered diagram source keyed by prompt and orientation.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached diagrams.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cache entries.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Cache with its own Redis client.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "archwize:diagram:",
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// key hashes the prompt so arbitrarily long user text maps to a fixed-size
// Redis key.
func (c *Cache) key(prompt string, orientation mermaid.Orientation) string {
	sum := sha256.Sum256([]byte(string(orientation) + "|" + prompt))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns the cached diagram for the prompt, if any.
func (c *Cache) Get(ctx context.Context, prompt string, orientation mermaid.Orientation) (string, bool, error) {
	code, err := c.client.Get(ctx, c.key(prompt, orientation)).Result()
	if errors.Is(err, backend.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return code, true, nil
}

// Set stores a generated diagram under the prompt's key.
func (c *Cache) Set(ctx context.Context, prompt string, orientation mermaid.Orientation, code string) error {
	if err := c.client.Set(ctx, c.key(prompt, orientation), code, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
