package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultStoreKey is the single key the serialized collection lives under.
const DefaultStoreKey = "appointments"

// RedisStore persists the whole appointment collection as one JSON
// value under a fixed key. Callers must hold the store lock around
// Append; the read-modify-write here is not atomic on its own.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) List(ctx context.Context) ([]Appointment, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read appointment collection: %w", err)
	}

	var appts []Appointment
	if err := json.Unmarshal([]byte(raw), &appts); err != nil {
		return nil, fmt.Errorf("decode appointment collection: %w", err)
	}
	return appts, nil
}

func (s *RedisStore) Append(ctx context.Context, appt Appointment) error {
	appts, err := s.List(ctx)
	if err != nil {
		return err
	}

	appts = append(appts, appt)

	data, err := json.Marshal(appts)
	if err != nil {
		return fmt.Errorf("encode appointment collection: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write appointment collection: %w", err)
	}
	return nil
}
