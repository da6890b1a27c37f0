package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
)

// defaultScanInterval applies when the configured interval is zero or
// negative.
const defaultScanInterval = time.Hour

// scanJob runs the inactivity scanner on a ticker. The daily marker inside
// the scanner makes frequent sweeps cheap: after the first sweep of a day,
// subsequent ones skip every already-processed user.
type scanJob struct {
	scanner  service.ScannerService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScanJob creates a scanJob that calls scanner.Run every interval. The job
// is idle until Start is called.
func NewScanJob(scanner service.ScannerService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultScanInterval
	}
	return &scanJob{
		scanner:  scanner,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running job, then launches
// a background goroutine that runs one sweep immediately and again every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *scanJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.sweep(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *scanJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *scanJob) sweep(ctx context.Context) {
	ctx = j.logger.WithContext(ctx)

	report := j.scanner.Run(ctx)
	if !report.Success || len(report.Errors) > 0 {
		j.logger.Error().Strs("errors", report.Errors).Msg("inactivity sweep finished with errors")
		return
	}

	j.logger.Debug().
		Int("inactiveUsers", report.InactiveUsers).
		Int("vaultsDelivered", report.VaultsDelivered).
		Msg("inactivity sweep finished")
}
