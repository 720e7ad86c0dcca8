package storage

import (
	"context"

	"github.com/superapp/accounts/internal/model"
)

// Storage defines the interface for data persistence.
//
// The user list is stored as a single blob: LoadUsers and SaveUsers
// always read and overwrite the whole list. There is no per-record
// operation at this layer; callers own the read-modify-write cycle.
type Storage interface {
	// User list operations
	LoadUsers(ctx context.Context) ([]model.User, error)
	SaveUsers(ctx context.Context, users []model.User) error

	// Session operations (single current session, overwritten on login)
	LoadSession(ctx context.Context) (*model.User, error)
	SaveSession(ctx context.Context, user *model.User) error
	DeleteSession(ctx context.Context) error
}
