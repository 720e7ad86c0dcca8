package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/superapp/accounts/internal/model"
	"github.com/superapp/accounts/internal/services/userstore"
	"github.com/superapp/accounts/internal/storage"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 4

// RegisterInput carries the raw registration form fields
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
}

// Service handles the login and registration workflows
type Service struct {
	users   *userstore.Service
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new account service
func New(users *userstore.Service, storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// Login authenticates a user by exact username and password match.
//
// The username is trimmed; the password is compared verbatim. On
// success the matched record is persisted as the current session,
// replacing any previous one.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, model.ErrMissingFields
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warn("login failed: user not found",
				slog.String("username", username))
		}
		return nil, err
	}

	// Plain string equality is the legacy contract: passwords are
	// stored unhashed and matched verbatim.
	if user.Password != password {
		s.logger.Warn("login failed: incorrect password",
			slog.String("username", username))
		return nil, model.ErrWrongPassword
	}

	session := *user
	if err := s.storage.SaveSession(ctx, &session); err != nil {
		return nil, err
	}

	s.logger.Info("login successful", slog.String("username", username))
	return user, nil
}

// Register validates the input and appends a new user record.
// Checks run in order and stop at the first failure. Returns the new
// record and the updated total user count.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*model.User, int, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if in.FirstName == "" || in.LastName == "" || in.Email == "" ||
		in.Username == "" || in.Password == "" || in.PasswordConfirm == "" {
		return nil, 0, model.ErrMissingFields
	}

	if len(in.Password) < MinPasswordLength {
		return nil, 0, model.ErrPasswordTooShort
	}

	if in.Password != in.PasswordConfirm {
		return nil, 0, model.ErrPasswordMismatch
	}

	user := model.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Username:  in.Username,
		Password:  in.Password,
	}

	// The uniqueness check and the append share one lock in the user
	// store; a separate find-then-append here would let two concurrent
	// registrations of the same username both pass the check.
	total, err := s.users.AppendUnique(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			s.logger.Warn("registration failed: username taken",
				slog.String("username", in.Username))
		}
		return nil, 0, err
	}

	s.logger.Info("new user registered",
		slog.String("username", user.Username),
		slog.Int("total_users", total))
	return &user, total, nil
}

// CurrentSession returns the persisted session record, if any
func (s *Service) CurrentSession(ctx context.Context) (*model.User, error) {
	return s.storage.LoadSession(ctx)
}

// Logout removes the persisted session. Removing a session that does
// not exist is not an error.
func (s *Service) Logout(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}
