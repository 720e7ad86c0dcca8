package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/superapp/accounts/internal/model"
	"github.com/superapp/accounts/internal/storage"
)

// Blob keys, matching the legacy localStorage layout
const (
	usersKey   = "superapp_users"
	sessionKey = "superapp_session"
)

// Storage is an in-memory implementation of the storage interface.
//
// It holds serialized JSON blobs rather than typed values so that it
// behaves like the real key-value backends: every load is a fresh
// deserialization and every save overwrites the whole blob.
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		blobs: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User list operations

func (s *Storage) LoadUsers(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[usersKey]
	if !ok {
		return []model.User{}, nil
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

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[usersKey] = data
	return nil
}

// Session operations

func (s *Storage) LoadSession(ctx context.Context) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[sessionKey]
	if !ok {
		return nil, model.ErrNoSession
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

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[sessionKey] = data
	return nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, sessionKey)
	return nil
}

// RawUsersBlob returns the serialized user list as stored, for tests
// that assert on blob-level round-trip behavior.
func (s *Storage) RawUsersBlob() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[usersKey]
	if !ok {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// SetRawUsersBlob overwrites the serialized user list, for tests that
// need to inject malformed or hand-built data.
func (s *Storage) SetRawUsersBlob(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[usersKey] = data
}
