package logging

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	level slog.Level
	mu    sync.Mutex
	msgs  []string
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, record.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func TestFanout_RoutesByLevel(t *testing.T) {
	all := &captureHandler{level: slog.LevelInfo}
	errOnly := &captureHandler{level: slog.LevelError}
	log := slog.New(NewFanout(all, errOnly))

	log.Info("routine")
	log.Error("broken")

	assert.Equal(t, []string{"routine", "broken"}, all.msgs)
	assert.Equal(t, []string{"broken"}, errOnly.msgs)
}

func TestFanout_EnabledIfAnyTargetIs(t *testing.T) {
	f := NewFanout(
		&captureHandler{level: slog.LevelError},
		&captureHandler{level: slog.LevelDebug},
	)
	ctx := context.Background()

	require.True(t, f.Enabled(ctx, slog.LevelDebug))
	require.True(t, f.Enabled(ctx, slog.LevelError))
}
