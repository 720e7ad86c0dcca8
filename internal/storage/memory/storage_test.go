package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/superapp/accounts/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User list tests

func (s *StorageSuite) TestLoadUsersEmptyStore() {
	users, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *StorageSuite) TestSaveAndLoadUsers() {
	users := []model.User{
		{FirstName: "Ana", LastName: "Lopez", Email: "a@x.com", Username: "ana", Password: "1234"},
		{FirstName: "Bob", LastName: "Smith", Email: "b@x.com", Username: "bob", Password: "5678"},
	}

	err := s.storage.SaveUsers(s.ctx, users)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(users, loaded)
}

func (s *StorageSuite) TestLoadUsersPreservesOrder() {
	users := []model.User{
		{Username: "c"}, {Username: "a"}, {Username: "b"},
	}
	_ = s.storage.SaveUsers(s.ctx, users)

	loaded, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal("c", loaded[0].Username)
	s.Equal("a", loaded[1].Username)
	s.Equal("b", loaded[2].Username)
}

func (s *StorageSuite) TestLoadUsersMalformedBlobIsEmpty() {
	s.storage.SetRawUsersBlob([]byte("{not json"))

	users, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *StorageSuite) TestBlobRoundTripIsStable() {
	users := []model.User{
		{FirstName: "Ana", LastName: "Lopez", Email: "a@x.com", Username: "ana", Password: "1234"},
	}
	_ = s.storage.SaveUsers(s.ctx, users)
	before := s.storage.RawUsersBlob()

	loaded, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveUsers(s.ctx, loaded))

	s.Equal(before, s.storage.RawUsersBlob())
}

func (s *StorageSuite) TestFreshStoreHasNoUsersBlobUntilFirstSave() {
	s.Nil(s.storage.RawUsersBlob())

	// Saving the empty list read from a fresh store materializes an
	// empty-array blob where no key existed before
	users, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveUsers(s.ctx, users))

	s.Equal([]byte("[]"), s.storage.RawUsersBlob())

	loaded, err := s.storage.LoadUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *StorageSuite) TestUsersBlobUsesLegacyFieldNames() {
	users := []model.User{
		{FirstName: "Ana", LastName: "Lopez", Email: "a@x.com", Username: "ana", Password: "1234"},
	}
	_ = s.storage.SaveUsers(s.ctx, users)

	blob := string(s.storage.RawUsersBlob())
	s.Contains(blob, `"nombre":"Ana"`)
	s.Contains(blob, `"apellido":"Lopez"`)
	s.Contains(blob, `"usuario":"ana"`)
}

// Session tests

func (s *StorageSuite) TestLoadSessionWhenNoneExists() {
	_, err := s.storage.LoadSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *StorageSuite) TestSaveAndLoadSession() {
	user := &model.User{Username: "ana", Password: "1234"}

	err := s.storage.SaveSession(s.ctx, user)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("ana", loaded.Username)
}

func (s *StorageSuite) TestSaveSessionOverwritesPrevious() {
	_ = s.storage.SaveSession(s.ctx, &model.User{Username: "ana"})
	_ = s.storage.SaveSession(s.ctx, &model.User{Username: "bob"})

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("bob", loaded.Username)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.User{Username: "ana"})

	err := s.storage.DeleteSession(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.LoadSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *StorageSuite) TestDeleteSessionWhenNoneExists() {
	err := s.storage.DeleteSession(s.ctx)
	s.NoError(err)
}
