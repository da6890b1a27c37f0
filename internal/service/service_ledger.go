package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// ledgerService is the concrete implementation of LedgerService. It writes
// append-only activity rows and serves the timeline views built on them.
type ledgerService struct {
	notificationRepository store.NotificationRepository
	uuid                   *utils.UUIDGenerator
	logger                 *logger.Logger
}

// NewLedgerService constructs a LedgerService over the notification store.
func NewLedgerService(notificationRepository store.NotificationRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		notificationRepository: notificationRepository,
		uuid:                   utils.NewUUIDGenerator(),
		logger:                 logger,
	}
}

// Record appends one activity row. Failures are logged and swallowed: the
// ledger documents operations, it does not gate them. A vault that was
// created stays created even if the row recording that fact was lost.
func (l *ledgerService) Record(ctx context.Context, userID, title, description, eventType string, metadata map[string]any) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	envelope, err := json.Marshal(models.NotificationEnvelope{
		Description: description,
		Type:        eventType,
		Metadata:    metadata,
		Timestamp:   now,
	})
	if err != nil {
		log.Err(err).Str("title", title).Msg("error encoding ledger envelope")
		return
	}

	_, err = l.notificationRepository.CreateNotification(ctx, models.Notification{
		NotificationID: l.uuid.Generate(),
		UserID:         userID,
		Title:          title,
		Content:        string(envelope),
		CreatedAt:      now,
	})
	if err != nil {
		log.Err(err).Str("title", title).Str("user_id", userID).Msg("error recording ledger entry")
	}
}

// Timeline returns ledger rows for the filter's user, newest first.
func (l *ledgerService) Timeline(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	if filter.UserID == "" {
		return nil, ErrInvalidDataProvided
	}

	notifications, err := l.notificationRepository.GetUserNotifications(ctx, filter)
	if err != nil {
		log.Err(err).Str("user_id", filter.UserID).Msg("error reading timeline")
		return nil, fmt.Errorf("error reading timeline: %w", err)
	}

	return notifications, nil
}

// ExportCSV renders the user's full timeline as CSV with a header row.
// Envelope fields are flattened into columns; malformed envelopes export
// with empty description and type rather than failing the whole file.
func (l *ledgerService) ExportCSV(ctx context.Context, userID string) ([]byte, error) {
	notifications, err := l.Timeline(ctx, models.NotificationFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "title", "description", "type"}); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}

	for _, n := range notifications {
		env := n.Envelope()
		record := []string{
			n.CreatedAt.UTC().Format(time.RFC3339),
			n.Title,
			env.Description,
			env.Type,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
