package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// notificationRepository is the SQL-backed implementation of
// [NotificationRepository]. Rows are write-once; there is no update path.
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotification appends a ledger row.
func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification,
		notification.NotificationID, notification.UserID, notification.Title,
		notification.Content, notification.MarkerDate, notification.CreatedAt)

	var created models.Notification
	if err := scanNotification(row, &created); err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error creating notification")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetUserNotifications returns ledger rows for the filter's user, newest
// first, optionally narrowed by title and capped by limit.
func (r *notificationRepository) GetUserNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserNotificationsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.GetUserNotifications").Msg("error listing notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.NotificationID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "*notificationRepository.GetUserNotifications").Msg("error scanning notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// CreateDailyMarker inserts the per-day idempotency marker for a user. The
// insert and the uniqueness check are a single statement, so two scanners
// racing on the same user and day cannot both win: the loser's INSERT hits
// ON CONFLICT DO NOTHING, returns no row, and maps to
// [ErrAlreadyProcessedToday].
func (r *notificationRepository) CreateDailyMarker(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDailyMarker,
		notification.NotificationID, notification.UserID, notification.Title,
		notification.Content, notification.MarkerDate, notification.CreatedAt)

	var created models.Notification
	if err := scanNotification(row, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrAlreadyProcessedToday
		}
		log.Err(err).Str("func", "*notificationRepository.CreateDailyMarker").Msg("error creating daily marker")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func scanNotification(row *sql.Row, n *models.Notification) error {
	return row.Scan(&n.NotificationID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt)
}
