package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
)

// Store adapts a Redis client to the kv.Store port. Each partition key maps
// to one Redis string holding the JSON-encoded record array. Backend faults
// are logged and contained as absence (reads) or false (writes); they never
// escape as errors.
type Store struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewStore wraps the given Redis client as a kv.Store.
func NewStore(client *redis.Client, log zerolog.Logger) *Store {
	return &Store{client: client, log: log}
}

func (s *Store) Get(ctx context.Context, key kv.Key) ([]byte, bool) {
	raw, err := s.client.Get(ctx, string(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", string(key)).Msg("kv read failed, using default")
		}
		return nil, false
	}
	return raw, true
}

func (s *Store) Set(ctx context.Context, key kv.Key, value []byte) bool {
	if err := s.client.Set(ctx, string(key), value, 0).Err(); err != nil {
		s.log.Error().Err(err).Str("key", string(key)).Msg("kv write failed")
		return false
	}
	return true
}

func (s *Store) Del(ctx context.Context, key kv.Key) bool {
	if err := s.client.Del(ctx, string(key)).Err(); err != nil {
		s.log.Error().Err(err).Str("key", string(key)).Msg("kv delete failed")
		return false
	}
	return true
}
