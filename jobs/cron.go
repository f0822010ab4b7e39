package jobs

import (
	"context"
	"time"

	"qrattendance/services/logger"

	"github.com/robfig/cron/v3"
)

// ColumnPreparer creates today's date column ahead of the first scan.
type ColumnPreparer interface {
	PrepareToday(ctx context.Context) (int, error)
}

const prepareTimeout = 30 * time.Second

// PrepareColumnsJob returns the job body run at midnight.
func PrepareColumnsJob(preparer ColumnPreparer, log logger.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), prepareTimeout)
		defer cancel()

		col, err := preparer.PrepareToday(ctx)
		if err != nil {
			log.Error("prepare today's column: %v", err)
			return
		}
		log.Info("today's column ready at index %d", col)
	}
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, preparer ColumnPreparer, log logger.Logger) error {
	// 00:00 in the scheduler's location
	if _, err := c.AddFunc("0 0 * * *", PrepareColumnsJob(preparer, log)); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
