package userapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/errs"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := dbtest.New(t)
	return NewUserService(database.NewUserRepositoryDatabase(db), []byte("test-secret"), nil)
}

func TestUserService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	t.Run("Successful registration", func(t *testing.T) {
		dto, err := svc.RegisterUser(ctx, "Leo", "Tolstoy", "leo", "password123")
		require.NoError(t, err)
		assert.Equal(t, "leo", dto.Username)
		assert.NotEmpty(t, dto.ID)

		stored, err := svc.UserRepository.FindByUsername(ctx, "leo")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.Password, "password must be hashed")
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "Other", "", "leo", "password123")
		assert.True(t, errors.Is(err, errs.ErrUsernameTaken))
	})

	t.Run("Short password", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "Mia", "", "mia", "short")
		v, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "password", v.Field)
	})

	t.Run("Blank username", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "Mia", "", "  ", "password123")
		v, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "username", v.Field)
	})
}

func TestUserService_LoginUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)
	registered, err := svc.RegisterUser(ctx, "Leo", "", "leo", "password123")
	require.NoError(t, err)

	t.Run("Token round trip", func(t *testing.T) {
		resp, err := svc.LoginUser(ctx, "leo", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

		id, err := svc.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, id.String())
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.LoginUser(ctx, "leo", "wrong-password")
		assert.True(t, errors.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := svc.LoginUser(ctx, "nobody", "password123")
		assert.True(t, errors.Is(err, errs.ErrInvalidCredentials))
	})
}

func TestUserService_ParseToken(t *testing.T) {
	svc := newUserService(t)

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ParseToken("not-a-token")
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("Signed with another key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{
			Subject:   "4a1f5b9e-8d53-4c1a-9d0e-0c3f1b2a6e77",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})
		raw, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = svc.ParseToken(raw)
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("Expired", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{
			Subject:   "4a1f5b9e-8d53-4c1a-9d0e-0c3f1b2a6e77",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})
		raw, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ParseToken(raw)
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
	})
}

func TestUserService_GetByUsername(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)
	_, err := svc.RegisterUser(ctx, "Leo", "", "leo", "password123")
	require.NoError(t, err)

	dto, err := svc.GetByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, "Leo", dto.Name)

	_, err = svc.GetByUsername(ctx, "ghost")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
