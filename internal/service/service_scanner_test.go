package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type scannerSvcMocks struct {
	users         *mock.MockUserRepository
	notifications *mock.MockNotificationRepository
	dispatcher    *mock.MockDispatcherService
}

// newTestScannerSvc builds a scannerService with a frozen clock.
func newTestScannerSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*scannerService, scannerSvcMocks) {
	t.Helper()

	m := scannerSvcMocks{
		users:         mock.NewMockUserRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
		dispatcher:    mock.NewMockDispatcherService(ctrl),
	}

	repos := &store.Repositories{
		UserRepository:         m.users,
		NotificationRepository: m.notifications,
	}

	svc := NewScannerService(repos, m.dispatcher, logger.Nop()).(*scannerService)
	svc.now = func() time.Time { return now }

	return svc, m
}

func TestScannerService_Run_EligibilityBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestScannerSvc(t, ctrl, now)
	ctx := context.Background()

	users := []models.User{
		// 29 days and 22 hours of silence: not a whole 30 days yet.
		{UserID: "almost", Email: "almost@example.com", InactivityThresholdDays: 30,
			LastLogin: now.Add(-30*24*time.Hour + 2*time.Hour)},
		// Exactly 30 whole days: eligible.
		{UserID: "due", Email: "due@example.com", InactivityThresholdDays: 30,
			LastLogin: now.Add(-30 * 24 * time.Hour)},
		// Threshold zero disables delivery regardless of silence.
		{UserID: "disabled", Email: "disabled@example.com", InactivityThresholdDays: 0,
			LastLogin: now.Add(-400 * 24 * time.Hour)},
		// A last_login ahead of the sweep clock (server skew) never counts
		// as inactivity.
		{UserID: "skewed", Email: "skewed@example.com", InactivityThresholdDays: 1,
			LastLogin: now.Add(48 * time.Hour)},
	}

	gomock.InOrder(
		m.users.EXPECT().ListUsers(ctx).Return(users, nil),
		m.notifications.EXPECT().CreateDailyMarker(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n models.Notification) (models.Notification, error) {
				assert.Equal(t, "due", n.UserID)
				assert.Equal(t, models.TitleInactivityProcessed, n.Title)
				require.NotNil(t, n.MarkerDate)
				assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *n.MarkerDate,
					"the marker pins the UTC calendar day, not the sweep instant")
				return n, nil
			},
		),
		m.dispatcher.EXPECT().DeliverUserVaults(ctx, users[1]).Return(2, nil),
	)

	report := svc.Run(ctx)
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.InactiveUsers)
	assert.Equal(t, 2, report.VaultsDelivered)
	assert.Empty(t, report.Errors)
}

func TestScannerService_Run_AlreadyProcessedToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	svc, m := newTestScannerSvc(t, ctrl, now)
	ctx := context.Background()

	user := models.User{UserID: "due", InactivityThresholdDays: 30, LastLogin: now.Add(-31 * 24 * time.Hour)}

	gomock.InOrder(
		m.users.EXPECT().ListUsers(ctx).Return([]models.User{user}, nil),
		m.notifications.EXPECT().CreateDailyMarker(ctx, gomock.Any()).
			Return(models.Notification{}, store.ErrAlreadyProcessedToday),
		// No DeliverUserVaults call: a lost marker race skips the user.
	)

	report := svc.Run(ctx)
	assert.True(t, report.Success, "a second sweep the same day is a no-op, not a failure")
	assert.Equal(t, 1, report.InactiveUsers)
	assert.Equal(t, 0, report.VaultsDelivered)
}

func TestScannerService_Run_CollectsPerUserErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	svc, m := newTestScannerSvc(t, ctrl, now)
	ctx := context.Background()

	broken := models.User{UserID: "broken", InactivityThresholdDays: 14, LastLogin: now.Add(-20 * 24 * time.Hour)}
	healthy := models.User{UserID: "healthy", InactivityThresholdDays: 14, LastLogin: now.Add(-20 * 24 * time.Hour)}

	gomock.InOrder(
		m.users.EXPECT().ListUsers(ctx).Return([]models.User{broken, healthy}, nil),
		m.notifications.EXPECT().CreateDailyMarker(ctx, gomock.Any()).Return(models.Notification{}, nil),
		m.dispatcher.EXPECT().DeliverUserVaults(ctx, broken).Return(1, errors.New("mail gateway down")),
		m.notifications.EXPECT().CreateDailyMarker(ctx, gomock.Any()).Return(models.Notification{}, nil),
		m.dispatcher.EXPECT().DeliverUserVaults(ctx, healthy).Return(3, nil),
	)

	report := svc.Run(ctx)
	assert.True(t, report.Success, "per-user failures are reported in Errors, not as a failed run")
	assert.Equal(t, 2, report.InactiveUsers)
	assert.Equal(t, 4, report.VaultsDelivered, "vaults delivered before the failure still count")
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "broken")
}

func TestScannerService_Run_ListUsersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScannerSvc(t, ctrl, time.Now().UTC())
	ctx := context.Background()

	m.users.EXPECT().ListUsers(ctx).Return(nil, errors.New("connection refused"))

	report := svc.Run(ctx)
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 0, report.InactiveUsers)
}
