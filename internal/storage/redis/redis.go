// Package redis provides Redis persistence for health records. Each record is
// stored as a JSON document under KeyPrefix + the lower-cased character name.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/charhp/internal/config"
	"github.com/cory-johannsen/charhp/internal/game/health"
)

var _ health.Store = (*HealthRepository)(nil)

// HealthRepository persists health records in Redis.
type HealthRepository struct {
	client goredis.UniversalClient
	prefix string
}

// Open connects to the Redis server described by cfg.
//
// Precondition: cfg.Addr must be non-empty.
// Postcondition: Returns a repository whose server answered PING, or a non-nil error.
func Open(ctx context.Context, cfg config.RedisConfig) (*HealthRepository, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return NewHealthRepository(client, cfg.KeyPrefix), nil
}

// NewHealthRepository wraps an existing client.
//
// Precondition: client must be non-nil.
func NewHealthRepository(client goredis.UniversalClient, prefix string) *HealthRepository {
	return &HealthRepository{client: client, prefix: prefix}
}

func (r *HealthRepository) key(name string) string {
	return r.prefix + health.Key(name)
}

// GetByName loads the record whose name matches ignoring case.
//
// Postcondition: Returns the record, or an error wrapping health.ErrRecordNotFound.
func (r *HealthRepository) GetByName(ctx context.Context, name string) (health.Record, error) {
	val, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return health.Record{}, fmt.Errorf("%w: %q", health.ErrRecordNotFound, name)
		}
		return health.Record{}, fmt.Errorf("getting health: %w", err)
	}
	var rec health.Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return health.Record{}, fmt.Errorf("decoding health for %q: %w", name, err)
	}
	return rec, nil
}

// Save writes rec without expiry, replacing any previous value.
//
// Precondition: rec.Name must be non-empty.
func (r *HealthRepository) Save(ctx context.Context, rec health.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding health: %w", err)
	}
	if err := r.client.Set(ctx, r.key(rec.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("saving health: %w", err)
	}
	return nil
}

// Ping reports whether the server is reachable.
func (r *HealthRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (r *HealthRepository) Close() error {
	return r.client.Close()
}
