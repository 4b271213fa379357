package service

import (
	"context"
	"testing"
	"time"

	"athme/training-app/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthService() (AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	return NewAuthService(users, testJWTSecret, time.Hour), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users := newAuthService()

	user, err := svc.Register(context.Background(), "Lena", "lena@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")

	// The stored hash is not the plaintext.
	stored, err := users.GetByEmail(context.Background(), "lena@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cretpass", stored.PasswordHash)

	token, loggedIn, err := svc.Login(context.Background(), "lena@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	// Token parses with the same secret and carries the user id.
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), "Lena", "lena@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "lena@example.com", "different")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), "Lena", "lena@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "lena@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.Register(context.Background(), "Lena", "lena@example.com", "s3cretpass")
	require.NoError(t, err)

	days := 5
	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.LevelIntermediate, &days)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelIntermediate, updated.FitnessLevel)
	require.NotNil(t, updated.TrainingDaysPerWeek)
	assert.Equal(t, 5, *updated.TrainingDaysPerWeek)

	_, err = svc.UpdateProfile(context.Background(), primitive.NewObjectID(), domain.LevelBeginner, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
