package userstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/superapp/accounts/internal/model"
	"github.com/superapp/accounts/internal/storage"
)

// Service owns the canonical user list.
//
// The list lives in storage as one serialized blob, so every mutation
// is a whole-list read-modify-write. The service mutex serializes
// those cycles within this process; the backends themselves offer no
// compare-and-swap.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new user store service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadAll returns every stored user in insertion order
func (s *Service) LoadAll(ctx context.Context) ([]model.User, error) {
	return s.storage.LoadUsers(ctx)
}

// SaveAll overwrites the stored user list
func (s *Service) SaveAll(ctx context.Context, users []model.User) error {
	return s.storage.SaveUsers(ctx, users)
}

// FindByUsername returns the first user whose username exactly equals
// name. The match is case-sensitive and untrimmed.
func (s *Service) FindByUsername(ctx context.Context, name string) (*model.User, error) {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == name {
			return &users[i], nil
		}
	}
	return nil, model.ErrUserNotFound
}

// Append adds a user to the end of the list and returns the updated
// total count. The load-append-save cycle runs under the service lock.
func (s *Service) Append(ctx context.Context, user model.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(ctx, user)
}

// AppendUnique adds a user only if no record with the same username
// exists yet. The uniqueness check and the append run under the same
// lock, so concurrent callers racing on one username cannot both
// succeed. Returns model.ErrUsernameTaken on a duplicate.
func (s *Service) AppendUnique(ctx context.Context, user model.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return 0, err
	}

	for i := range users {
		if users[i].Username == user.Username {
			return 0, model.ErrUsernameTaken
		}
	}

	users = append(users, user)
	if err := s.storage.SaveUsers(ctx, users); err != nil {
		return 0, err
	}
	return len(users), nil
}

// SeedDefaultAdmin ensures the default admin account exists.
// Idempotent: a second call finds the existing record and does nothing.
// Must run at startup before any login or registration is served.
func (s *Service) SeedDefaultAdmin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.FindByUsername(ctx, model.DefaultAdmin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	if _, err := s.appendLocked(ctx, model.DefaultAdmin); err != nil {
		return err
	}

	s.logger.Info("default admin user created",
		slog.String("username", model.DefaultAdmin.Username))
	return nil
}

func (s *Service) appendLocked(ctx context.Context, user model.User) (int, error) {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return 0, err
	}

	users = append(users, user)
	if err := s.storage.SaveUsers(ctx, users); err != nil {
		return 0, err
	}
	return len(users), nil
}
