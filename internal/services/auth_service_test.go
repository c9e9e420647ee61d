package services

import (
	"testing"
	"time"

	"github.com/civitas-io/denuncias-backend/internal/config"
	"github.com/civitas-io/denuncias-backend/internal/dto"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);
`).Error
	require.NoError(t, err)

	return db
}

func newAuthService(t *testing.T, expiry time.Duration) *AuthService {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: expiry}
	return NewAuthService(setupAuthDB(t), cfg)
}

func TestRegisterThenLogin(t *testing.T) {
	s := newAuthService(t, time.Hour)

	reg, err := s.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)

	login, err := s.Login(&dto.LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.Equal(t, "a@x.com", login.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newAuthService(t, time.Hour)

	_, err := s.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	_, err = s.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "completely-different"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	s := newAuthService(t, time.Hour)

	_, err := s.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "short"})
	assert.Error(t, err)
}

func TestLogin_UniformFailure(t *testing.T) {
	s := newAuthService(t, time.Hour)

	_, err := s.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	// Wrong password for an existing user and an unknown email must be
	// indistinguishable.
	_, wrongPw := s.Login(&dto.LoginRequest{Email: "a@x.com", Password: "wrongpass"})
	_, unknown := s.Login(&dto.LoginRequest{Email: "ghost@x.com", Password: "password1"})

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestToken_IssueAndVerify(t *testing.T) {
	s := newAuthService(t, time.Hour)

	token, err := s.IssueToken("a@x.com")
	require.NoError(t, err)

	identity, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity)
}

func TestToken_Expired(t *testing.T) {
	s := newAuthService(t, -time.Minute)

	token, err := s.IssueToken("a@x.com")
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestToken_Tampered(t *testing.T) {
	s := newAuthService(t, time.Hour)

	token, err := s.IssueToken("a@x.com")
	require.NoError(t, err)

	_, err = s.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestToken_WrongKey(t *testing.T) {
	s := newAuthService(t, time.Hour)
	other := NewAuthService(nil, &config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := other.IssueToken("a@x.com")
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
