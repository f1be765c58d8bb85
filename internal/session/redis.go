package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tourbot:session:"

// RedisStore backs sessions with Redis so state survives restarts and can
// be shared across replicas. Sessions are stored as one JSON value per id;
// TTL zero means no expiry, matching the in-memory behavior.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, ttl: opts.TTL}, nil
}

// NewRedisStoreFromClient wraps an existing client. Used by tests.
func NewRedisStoreFromClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// GetOrCreate fetches the session JSON, returning a fresh session when the
// key is absent. A corrupt value is treated as absent rather than fatal.
func (r *RedisStore) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{ID: id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return &Session{ID: id}, nil
	}
	s.ID = id
	return &s, nil
}

// Save writes the session JSON back under its id.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", s.ID, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+s.ID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
