package crontab

import (
	"context"
	"time"

	"portal-server/internal/config"
	"portal-server/internal/domain/notification"
	"portal-server/internal/infrastructure/logger"
	"portal-server/internal/infrastructure/metrics"
	"portal-server/internal/utils/platformerrors"

	"github.com/mileusna/crontab"
)

const (
	DefaultSweepSchedule = "0 * * * *" // hourly
	CronJobTimeout       = 5 * time.Minute
)

type Crontab struct {
	ctab                *crontab.Crontab
	notificationService *notification.Service
}

func NewCrontab(notificationService *notification.Service) *Crontab {
	return &Crontab{
		ctab:                crontab.New(),
		notificationService: notificationService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// sweep once on server start
	c.sweep()

	schedule := DefaultSweepSchedule
	if cfg := config.GetGlobal(); cfg != nil && cfg.NotificationSweepSchedule != "" {
		schedule = cfg.NotificationSweepSchedule
	}

	if err := c.ctab.AddJob(schedule, c.sweep); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add notification sweep job")
	}
	log.Info().Str("schedule", schedule).Msg("notification retention sweep scheduled")

	// Reload environment configuration each minute
	if err := c.ctab.AddJob("* * * * *", func() {
		config.Load()
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweep() {
	jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
	defer cancel()
	removed, err := c.notificationService.PruneExpired(jobCtx)
	if err != nil {
		return
	}
	metrics.NotificationsPrunedTotal.Add(float64(removed))
}
