package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dbBatchSize = 50

// DBHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table. Flush failures are reported on fallback so they never
// re-enter the handler.
type DBHandler struct {
	db       *gorm.DB
	fallback *slog.Logger
	attrs    []slog.Attr
	shared   *dbBuffer
}

type dbBuffer struct {
	mu       sync.Mutex
	entries  []models.SystemLog
	closed   bool
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewDBHandler(db *gorm.DB, interval time.Duration, fallback *slog.Logger) *DBHandler {
	h := &DBHandler{
		db:       db,
		fallback: fallback,
		shared: &dbBuffer{
			entries: make([]models.SystemLog, 0, dbBatchSize),
			ticker:  time.NewTicker(interval),
			done:    make(chan struct{}),
		},
	}
	h.shared.wg.Add(1)
	go h.flushLoop()
	return h
}

func (h *DBHandler) flushLoop() {
	defer h.shared.wg.Done()
	for {
		select {
		case <-h.shared.ticker.C:
			h.Flush()
		case <-h.shared.done:
			h.Flush()
			return
		}
	}
}

// Flush writes all buffered entries.
func (h *DBHandler) Flush() {
	b := h.shared
	b.mu.Lock()
	if len(b.entries) == 0 {
		b.mu.Unlock()
		return
	}
	batch := b.entries
	b.entries = make([]models.SystemLog, 0, dbBatchSize)
	b.mu.Unlock()

	if err := h.db.CreateInBatches(batch, dbBatchSize).Error; err != nil {
		h.fallback.Error("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

// Stop flushes what is left and ends the background loop. Records handled
// afterwards are dropped; the stdout handler still carries them.
func (h *DBHandler) Stop() {
	b := h.shared
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		b.mu.Unlock()
		b.ticker.Stop()
		close(b.done)
	})
	b.wg.Wait()
}

func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time.UTC(),
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "method":
			entry.Method = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)

	entry.Extra = datatypes.JSON("{}")
	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	b := h.shared
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.entries = append(b.entries, entry)
	full := len(b.entries) >= dbBatchSize
	if full {
		b.wg.Add(1)
	}
	b.mu.Unlock()

	if full {
		go func() {
			defer b.wg.Done()
			h.Flush()
		}()
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{db: h.db, fallback: h.fallback, attrs: merged, shared: h.shared}
}

// WithGroup is a no-op: stored records are flat.
func (h *DBHandler) WithGroup(string) slog.Handler {
	return h
}
