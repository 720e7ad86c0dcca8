package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/superapp/accounts/internal/model"
	"github.com/superapp/accounts/internal/services/account"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.UserStore.SeedDefaultAdmin(s.ctx))
}

// Test: complete flow from fresh store through registration to login
func (s *IntegrationSuite) TestRegisterAndLoginFlow() {
	// Fresh seeded store holds exactly the admin record
	users, err := s.app.UserStore.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(model.DefaultAdmin, users[0])

	// Register a new account
	user, total, err := s.app.AccountService.Register(s.ctx, account.RegisterInput{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "a@x.com",
		Username:        "ana",
		Password:        "1234",
		PasswordConfirm: "1234",
	})
	s.Require().NoError(err)
	s.Equal(2, total)

	// Login returns the registered record and persists the session
	logged, err := s.app.AccountService.Login(s.ctx, "ana", "1234")
	s.Require().NoError(err)
	s.Equal(user.Email, logged.Email)

	session, err := s.app.AccountService.CurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("ana", session.Username)

	// A wrong password is rejected
	_, err = s.app.AccountService.Login(s.ctx, "ana", "wrong")
	s.ErrorIs(err, model.ErrWrongPassword)
}

// Test: the persisted blob survives a load/save cycle unchanged
func (s *IntegrationSuite) TestBlobRoundTripAfterRegistration() {
	_, _, err := s.app.AccountService.Register(s.ctx, account.RegisterInput{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "a@x.com",
		Username:        "ana",
		Password:        "1234",
		PasswordConfirm: "1234",
	})
	s.Require().NoError(err)

	before := s.app.MemoryStorage.RawUsersBlob()

	users, err := s.app.UserStore.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.app.UserStore.SaveAll(s.ctx, users))

	s.Equal(before, s.app.MemoryStorage.RawUsersBlob())
}

func (s *IntegrationSuite) TestInvalidStorageType() {
	_, err := New(Config{StorageType: "bogus"})
	s.Error(err)
}

func (s *IntegrationSuite) TestRedisStorageRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}
