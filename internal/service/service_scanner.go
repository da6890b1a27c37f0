package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// scannerService is the concrete implementation of ScannerService. One Run is
// one sweep: every account is checked against its own threshold, eligible
// owners get their vaults delivered, and a per-day marker keeps repeated
// sweeps idempotent.
type scannerService struct {
	userRepository         store.UserRepository
	notificationRepository store.NotificationRepository

	dispatcher DispatcherService
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewScannerService constructs a ScannerService over the user store and the
// delivery dispatcher.
func NewScannerService(
	repos *store.Repositories,
	dispatcher DispatcherService,
	logger *logger.Logger,
) ScannerService {
	return &scannerService{
		userRepository:         repos.UserRepository,
		notificationRepository: repos.NotificationRepository,
		dispatcher:             dispatcher,
		uuid:                   utils.NewUUIDGenerator(),
		logger:                 logger,
		now:                    time.Now,
	}
}

// Run performs one inactivity sweep. Per-user failures are collected into the
// report instead of aborting the sweep: one broken account must not block
// deliveries owed to everyone else.
func (s *scannerService) Run(ctx context.Context) models.ScanReport {
	log := logger.FromContext(ctx)
	report := models.ScanReport{Success: true}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("scan aborted: error listing users")
		report.Success = false
		report.Errors = append(report.Errors, fmt.Sprintf("listing users: %v", err))
		return report
	}

	now := s.now().UTC()
	for _, user := range users {
		if !eligibleForDelivery(user, now) {
			continue
		}
		report.InactiveUsers++

		if err := s.markProcessedToday(ctx, user, now); err != nil {
			if errors.Is(err, store.ErrAlreadyProcessedToday) {
				log.Debug().Str("user_id", user.UserID).Msg("inactivity already processed today, skipping")
				continue
			}
			log.Err(err).Str("user_id", user.UserID).Msg("error writing daily marker")
			report.Errors = append(report.Errors, fmt.Sprintf("user %s: daily marker: %v", user.UserID, err))
			continue
		}

		delivered, err := s.dispatcher.DeliverUserVaults(ctx, user)
		report.VaultsDelivered += delivered
		if err != nil {
			log.Err(err).Str("user_id", user.UserID).Msg("vault delivery ended with error")
			report.Errors = append(report.Errors, fmt.Sprintf("user %s: delivery: %v", user.UserID, err))
			continue
		}

		log.Info().Str("user_id", user.UserID).Int("vaults", delivered).Msg("inactive user processed")
	}

	log.Info().
		Int("inactive_users", report.InactiveUsers).
		Int("vaults_delivered", report.VaultsDelivered).
		Int("errors", len(report.Errors)).
		Msg("inactivity scan complete")

	return report
}

// markProcessedToday claims the user's processing slot for the current UTC
// day. The claim is a single INSERT racing on a partial unique index, so of
// any number of concurrent scanners exactly one wins.
func (s *scannerService) markProcessedToday(ctx context.Context, user models.User, now time.Time) error {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	envelope := fmt.Sprintf(
		`{"description":"Processed inactivity for %s","type":"system","timestamp":%q}`,
		user.Email, now.Format(time.RFC3339))

	_, err := s.notificationRepository.CreateDailyMarker(ctx, models.Notification{
		NotificationID: s.uuid.Generate(),
		UserID:         user.UserID,
		Title:          models.TitleInactivityProcessed,
		Content:        envelope,
		MarkerDate:     &day,
		CreatedAt:      now,
	})
	return err
}

// eligibleForDelivery reports whether the user has been away for at least
// their threshold. Days are whole days: 29.9 days of silence against a
// 30-day threshold is not eligible.
func eligibleForDelivery(user models.User, now time.Time) bool {
	if user.InactivityThresholdDays <= 0 {
		return false
	}

	// Clock skew between app servers can put last_login ahead of now; the
	// int truncation below would flatten that to 0 days, so reject it
	// explicitly.
	if now.Before(user.LastLogin) {
		return false
	}

	daysInactive := int(now.Sub(user.LastLogin).Hours() / 24)
	return daysInactive >= user.InactivityThresholdDays
}
