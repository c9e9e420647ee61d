package logging

import (
	"log/slog"
	"time"

	"github.com/civitas-io/denuncias-backend/internal/models"
	"gorm.io/gorm"
)

const retention = 30 * 24 * time.Hour

// StartCleanup deletes system_logs rows older than the retention window,
// once at startup and then daily, until done is closed.
func StartCleanup(db *gorm.DB, done <-chan struct{}) {
	go func() {
		run := func() {
			cutoff := time.Now().Add(-retention)
			res := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
			if res.Error != nil {
				slog.Error("system log cleanup failed", "error", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				slog.Info("system logs pruned", "rows", res.RowsAffected)
			}
		}

		run()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				run()
			case <-done:
				return
			}
		}
	}()
}
