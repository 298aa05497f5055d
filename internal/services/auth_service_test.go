package services

import (
	"context"
	"testing"

	"mediamate-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	service := newAuthService(t)

	user, err := service.Register(context.Background(), "alice", "alice@example.com", "s3cret99")
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.NotEqual(t, "s3cret99", user.PasswordHash)

	loggedIn, err := service.Login(context.Background(), "alice", "s3cret99")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, loggedIn.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newAuthService(t)

	_, err := service.Register(context.Background(), "alice", "alice@example.com", "s3cret99")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Login(context.Background(), "mallory", "s3cret99")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service := newAuthService(t)

	_, err := service.Register(context.Background(), "alice", "alice@example.com", "s3cret99")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "alice", "other@example.com", "s3cret99")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = service.Register(context.Background(), "alice2", "alice@example.com", "s3cret99")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	service := newAuthService(t)

	user, err := service.Register(context.Background(), "alice", "alice@example.com", "oldpass1")
	require.NoError(t, err)

	t.Run("wrong current password rejected", func(t *testing.T) {
		_, err := service.UpdateProfile(context.Background(), user.UserID, UpdateProfileParams{
			CurrentPassword: "wrong",
			NewPassword:     "newpass1",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	_, err = service.UpdateProfile(context.Background(), user.UserID, UpdateProfileParams{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), "alice", "newpass1")
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), "alice", "oldpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
