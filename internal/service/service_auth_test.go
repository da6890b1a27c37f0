package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds an authService over a mocked user repository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		PasswordHashKey: "test-hash-key",
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "everkeep-test",
		TokenDuration:   time.Hour,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop()).(*authService)
	return svc, mockUsers
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.UserID)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, utils.HashString("super-secret", "test-hash-key"), u.PasswordHash)
			assert.Equal(t, 30, u.InactivityThresholdDays)
			assert.False(t, u.LastLogin.IsZero(), "a fresh account starts its inactivity clock at registration")
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "super-secret", user.PasswordHash)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), "", "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), "Alice", "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: utils.HashString("super-secret", "test-hash-key"),
		LastLogin:    time.Now().UTC().Add(-45 * 24 * time.Hour),
	}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil),
		mockUsers.EXPECT().TouchLastLogin(ctx, "user-1").Return(nil),
	)

	user, err := svc.Login(ctx, "alice@example.com", "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.WithinDuration(t, time.Now().UTC(), user.LastLogin, time.Minute,
		"login must reset the inactivity clock")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: utils.HashString("super-secret", "test-hash-key"),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)

	_, err := svc.Login(ctx, "alice@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_TouchFailureFailsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: utils.HashString("super-secret", "test-hash-key"),
	}
	touchErr := errors.New("connection reset")

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil),
		mockUsers.EXPECT().TouchLastLogin(ctx, "user-1").Return(touchErr),
	)

	_, err := svc.Login(ctx, "alice@example.com", "super-secret")
	assert.ErrorIs(t, err, touchErr,
		"an unrecorded login must fail: otherwise the scanner may deliver vaults of an active user")
}

func TestAuthService_UpdateInactivityThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.UpdateInactivityThreshold(ctx, "user-1", 0)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = svc.UpdateInactivityThreshold(ctx, "user-1", 366)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	mockUsers.EXPECT().UpdateInactivityThreshold(ctx, "user-1", 90).
		Return(models.User{UserID: "user-1", InactivityThresholdDays: 90}, nil)

	updated, err := svc.UpdateInactivityThreshold(ctx, "user-1", 90)
	require.NoError(t, err)
	assert.Equal(t, 90, updated.InactivityThresholdDays)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
