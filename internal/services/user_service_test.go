package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avelara/storefront-be/internal/database"
)

// UserServiceTestSuite runs the user service against an in-memory database.
type UserServiceTestSuite struct {
	suite.Suite
	svc *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	db, err := database.New(":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	// A pooled :memory: connection would get a fresh empty database
	db.SetMaxOpenConns(1)
	require.NoError(s.T(), database.Migrate(db))
	s.svc = NewUserService(db)
}

func (s *UserServiceTestSuite) TearDownTest() {
	if s.svc != nil {
		s.svc.db.Close()
	}
}

func (s *UserServiceTestSuite) TestRegisterDistinctEmails() {
	u1, err := s.svc.Register("john", "john@example.com", "secret1")
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), u1.ID)
	assert.Empty(s.T(), u1.PasswordHash, "register must not return the hash")

	u2, err := s.svc.Register("jane", "jane@example.com", "secret2")
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), u1.ID, u2.ID)
}

func (s *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := s.svc.Register("john", "john@example.com", "secret")
	require.NoError(s.T(), err)

	_, err = s.svc.Register("johnny", "john@example.com", "other")
	assert.ErrorIs(s.T(), err, ErrUserExists)

	users, err := s.svc.GetAllUsers()
	require.NoError(s.T(), err)
	assert.Len(s.T(), users, 1, "duplicate registration must not create a record")
}

func (s *UserServiceTestSuite) TestPasswordIsHashed() {
	_, err := s.svc.Register("john", "john@example.com", "plaintext")
	require.NoError(s.T(), err)

	stored, err := s.svc.GetUserByEmail("john@example.com")
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), stored.PasswordHash)
	assert.NotEqual(s.T(), "plaintext", stored.PasswordHash)
}

func (s *UserServiceTestSuite) TestAuthenticateSuccess() {
	reg, err := s.svc.Register("john", "john@example.com", "secret")
	require.NoError(s.T(), err)

	user, err := s.svc.Authenticate("john@example.com", "secret")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), reg.ID, user.ID)
	assert.Equal(s.T(), "john", user.Username)
	assert.Empty(s.T(), user.PasswordHash)
}

func (s *UserServiceTestSuite) TestAuthenticateWrongPassword() {
	_, err := s.svc.Register("john", "john@example.com", "secret")
	require.NoError(s.T(), err)

	_, err = s.svc.Authenticate("john@example.com", "wrong")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestAuthenticateUnknownEmail() {
	_, err := s.svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(s.T(), err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestGetAllUsers() {
	_, err := s.svc.Register("john", "john@example.com", "secret1")
	require.NoError(s.T(), err)
	_, err = s.svc.Register("jane", "jane@example.com", "secret2")
	require.NoError(s.T(), err)

	users, err := s.svc.GetAllUsers()
	require.NoError(s.T(), err)
	require.Len(s.T(), users, 2)
	for _, u := range users {
		assert.Empty(s.T(), u.PasswordHash)
	}
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
