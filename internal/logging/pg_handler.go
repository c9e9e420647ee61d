package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/civitas-io/denuncias-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	flushInterval = 5 * time.Second
	flushBatch    = 50
)

// PGHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table. Inserts happen on a background ticker so logging never
// blocks a request on the database.
type PGHandler struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
}

func NewPGHandler(db *gorm.DB) *PGHandler {
	h := &PGHandler{
		db:     db,
		buffer: make([]models.SystemLog, 0, flushBatch),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := map[string]any{}
	record.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case "trace_id", "request_id":
			entry.TraceID = attr.Value.String()
		case "action":
			entry.Action = attr.Value.String()
		case "error":
			entry.Error = attr.Value.String()
		default:
			extra[attr.Key] = attr.Value.Any()
		}
		return true
	})
	if len(extra) > 0 {
		if raw, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(raw)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	full := len(h.buffer) >= flushBatch
	h.mu.Unlock()

	if full {
		h.flush()
	}
	return nil
}

func (h *PGHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *PGHandler) WithGroup(string) slog.Handler      { return h }

// Stop flushes any buffered records and halts the background loop.
func (h *PGHandler) Stop() {
	close(h.done)
	h.ticker.Stop()
	h.flush()
}

func (h *PGHandler) loop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			return
		}
	}
}

func (h *PGHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.SystemLog, 0, flushBatch)
	h.mu.Unlock()

	// Best effort: a failed insert must not recurse into the logger.
	h.db.Create(&batch)
}
