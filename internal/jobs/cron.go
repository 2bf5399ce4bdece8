// internal/jobs/cron.go
package jobs

import (
	"context"
	"time"

	"farepass-service/internal/service/currency"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitCronJobs schedules the background jobs and starts the scheduler.
// Currently one job: the hourly exchange-rate refresh.
func InitCronJobs(c *cron.Cron, currencySvc *currency.CurrencyService, logger *zap.Logger) error {
	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := currencySvc.Refresh(ctx); err != nil {
			// Refresh keeps the previous table on failure; just record it.
			logger.Warn("scheduled rate refresh failed", zap.Error(err))
			return
		}
		logger.Info("exchange rates refreshed")
	})
	if err != nil {
		return err
	}

	c.Start()
	logger.Info("cron jobs initialized")
	return nil
}
