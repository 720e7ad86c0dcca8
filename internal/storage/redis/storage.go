package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/superapp/accounts/internal/model"
	"github.com/superapp/accounts/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User list operations

func (s *Storage) LoadUsers(ctx context.Context) ([]model.User, error) {
	data, err := s.client.Get(ctx, usersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.User{}, nil
		}
		return nil, err
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		// Malformed blob is treated as an empty store (legacy behavior)
		return []model.User{}, nil
	}
	return users, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users []model.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, usersKey, data, 0).Err()
}

// Session operations

func (s *Storage) LoadSession(ctx context.Context) (*model.User, error) {
	data, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoSession
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, model.ErrNoSession
	}
	return &user, nil
}

func (s *Storage) SaveSession(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey, data, s.cfg.SessionTTL).Err()
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey).Err()
}
