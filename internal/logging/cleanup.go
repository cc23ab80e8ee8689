package logging

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PurgeSystemLogs deletes system_logs older than retention, measured from now.
func PurgeSystemLogs(db *gorm.DB, retention time.Duration, now time.Time) (int64, error) {
	result := db.Where("timestamp < ?", now.Add(-retention)).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup schedules PurgeSystemLogs on a cron spec such as "@daily".
// Stop the returned scheduler on shutdown.
func StartCleanup(db *gorm.DB, spec string, retention time.Duration) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		deleted, err := PurgeSystemLogs(db, retention, time.Now())
		if err != nil {
			slog.Error("log cleanup failed", "error", err)
			return
		}
		if deleted > 0 {
			slog.Info("log cleanup completed", "deleted", deleted)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
