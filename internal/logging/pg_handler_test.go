package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/civitas-io/denuncias-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.Exec(`
CREATE TABLE system_logs (
  id TEXT PRIMARY KEY,
  timestamp DATETIME NOT NULL,
  level TEXT NOT NULL,
  message TEXT,
  trace_id TEXT,
  action TEXT,
  error TEXT,
  extra TEXT,
  created_at DATETIME
);
`).Error
	require.NoError(t, err)
	return db
}

func TestPGHandler_IgnoresBelowError(t *testing.T) {
	h := NewPGHandler(setupLogDB(t))
	defer h.Stop()

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestPGHandler_FlushOnStop(t *testing.T) {
	db := setupLogDB(t)
	h := NewPGHandler(db)

	record := slog.NewRecord(time.Now(), slog.LevelError, "insert failed", 0)
	record.AddAttrs(
		slog.String("action", "submit_complaint"),
		slog.String("error", "connection refused"),
		slog.String("filename", "abc.png"),
	)
	require.NoError(t, h.Handle(context.Background(), record))

	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "insert failed", rows[0].Message)
	assert.Equal(t, "ERROR", rows[0].Level)
	assert.Equal(t, "submit_complaint", rows[0].Action)
	assert.Equal(t, "connection refused", rows[0].Error)
	assert.Contains(t, string(rows[0].Extra), "abc.png")
}
