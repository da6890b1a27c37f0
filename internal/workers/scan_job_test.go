package workers

import (
	"context"
	"testing"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"go.uber.org/mock/gomock"
)

func TestScanJob_RunsImmediatelyAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mock.NewMockScannerService(ctrl)

	ran := make(chan struct{}, 1)
	scanner.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) models.ScanReport {
		select {
		case ran <- struct{}{}:
		default:
		}
		return models.ScanReport{Success: true}
	}).MinTimes(1)

	job := NewScanJob(scanner, time.Hour, logger.Nop())
	job.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scan job did not run an immediate sweep")
	}

	// Stop must block until the goroutine exits and be safe to call twice.
	job.Stop()
	job.Stop()
}

func TestScanJob_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mock.NewMockScannerService(ctrl)

	job := NewScanJob(scanner, time.Minute, logger.Nop())
	job.Stop()
}

func TestScanJob_ContextCancelStopsSweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mock.NewMockScannerService(ctrl)
	scanner.EXPECT().Run(gomock.Any()).Return(models.ScanReport{Success: true}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewScanJob(scanner, 10*time.Millisecond, logger.Nop())
	job.Start(ctx)

	cancel()
	job.Stop()
}
