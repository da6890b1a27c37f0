package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

var notificationColumns = []string{"id", "user_id", "title", "content", "created_at"}

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &notificationRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateNotification_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	n := models.Notification{
		NotificationID: "notif-uuid-1",
		UserID:         "user-uuid-1",
		Title:          models.TitleVaultCreated,
		Content:        `{"description":"Created vault","type":"vault","timestamp":"2026-01-01T00:00:00Z"}`,
		CreatedAt:      now,
	}

	rows := sqlmock.
		NewRows(notificationColumns).
		AddRow(n.NotificationID, n.UserID, n.Title, n.Content, now)

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(n.NotificationID, n.UserID, n.Title, n.Content, nil, now).
		WillReturnRows(rows)

	created, err := repo.CreateNotification(ctx, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != models.TitleVaultCreated {
		t.Errorf("expected title %q, got %q", models.TitleVaultCreated, created.Title)
	}
}

func TestCreateDailyMarker_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	n := models.Notification{
		NotificationID: "notif-uuid-2",
		UserID:         "user-uuid-1",
		Title:          models.TitleInactivityProcessed,
		Content:        `{"description":"Processed inactivity","type":"system"}`,
		MarkerDate:     &day,
		CreatedAt:      now,
	}

	rows := sqlmock.
		NewRows(notificationColumns).
		AddRow(n.NotificationID, n.UserID, n.Title, n.Content, now)

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(n.NotificationID, n.UserID, n.Title, n.Content, &day, now).
		WillReturnRows(rows)

	created, err := repo.CreateDailyMarker(ctx, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.NotificationID != "notif-uuid-2" {
		t.Errorf("expected id notif-uuid-2, got %s", created.NotificationID)
	}
}

func TestCreateDailyMarker_AlreadyProcessed(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	n := models.Notification{
		NotificationID: "notif-uuid-3",
		UserID:         "user-uuid-1",
		Title:          models.TitleInactivityProcessed,
		Content:        `{}`,
		MarkerDate:     &day,
		CreatedAt:      now,
	}

	// ON CONFLICT DO NOTHING yields an empty result set for the loser.
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(sqlmock.NewRows(notificationColumns))

	_, err := repo.CreateDailyMarker(ctx, n)
	if !errors.Is(err, ErrAlreadyProcessedToday) {
		t.Fatalf("expected ErrAlreadyProcessedToday, got %v", err)
	}
}

func TestGetUserNotifications(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(notificationColumns).
		AddRow("n2", "user-uuid-1", models.TitleEntryAdded, `{}`, now).
		AddRow("n1", "user-uuid-1", models.TitleVaultCreated, `{}`, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, title").
		WithArgs("user-uuid-1").
		WillReturnRows(rows)

	notifications, err := repo.GetUserNotifications(ctx, models.NotificationFilter{UserID: "user-uuid-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].NotificationID != "n2" {
		t.Errorf("expected newest notification first, got %s", notifications[0].NotificationID)
	}
}

func TestGetUserNotifications_TitleFilter(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(notificationColumns).
		AddRow("n1", "user-uuid-1", models.TitleVaultDelivered, `{}`, now)

	mock.ExpectQuery("SELECT id, user_id, title").
		WithArgs("user-uuid-1", models.TitleVaultDelivered).
		WillReturnRows(rows)

	notifications, err := repo.GetUserNotifications(ctx, models.NotificationFilter{
		UserID: "user-uuid-1",
		Title:  models.TitleVaultDelivered,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
}
