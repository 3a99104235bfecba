package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/service"
	"github.com/rs/zerolog/log"
)

// LogBatcherConfig holds configuration for the log batcher.
type LogBatcherConfig struct {
	// QueueSize bounds the entries waiting to be written.
	QueueSize int
	// BatchSize is the largest number of entries per bulk insert.
	BatchSize int
	// FlushInterval bounds how long an entry waits in a partial batch.
	FlushInterval time.Duration
	// WriteTimeout bounds one bulk insert.
	WriteTimeout time.Duration
}

// DefaultLogBatcherConfig returns the defaults used for unset fields.
func DefaultLogBatcherConfig() LogBatcherConfig {
	return LogBatcherConfig{
		QueueSize:     1000,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// LogBatcher persists request and audit entries off the request path. A
// single goroutine collects queued entries and writes them with one
// CreateLogs call per batch. A full queue drops the entry.
type LogBatcher struct {
	store service.LoggingService
	cfg   LogBatcherConfig

	queue chan *model.LogEntry
	quit  chan struct{}
	done  chan struct{}

	// mu orders Log against Stop so nothing is queued after the final drain.
	mu      sync.RWMutex
	stopped bool
}

// NewLogBatcher starts a batcher writing to store. It returns nil when store
// is nil.
func NewLogBatcher(store service.LoggingService, cfg LogBatcherConfig) *LogBatcher {
	if store == nil {
		return nil
	}

	defaults := DefaultLogBatcherConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaults.QueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	b := &LogBatcher{
		store: store,
		cfg:   cfg,
		queue: make(chan *model.LogEntry, cfg.QueueSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go b.run()
	return b
}

// Log queues entry and reports whether it was accepted.
func (b *LogBatcher) Log(entry *model.LogEntry) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.stopped {
		select {
		case b.queue <- entry:
			return true
		default:
		}
	}
	metrics.RecordLogEntries(metrics.LogEntryDropped, 1)
	return false
}

// Stop writes everything still queued and returns once it is done. Later
// calls to Log drop their entry.
func (b *LogBatcher) Stop() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.stopped = true
	close(b.quit)
	b.mu.Unlock()

	<-b.done
}

func (b *LogBatcher) run() {
	defer close(b.done)

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, b.cfg.BatchSize)
	add := func(entry *model.LogEntry) {
		batch = append(batch, entry)
		if len(batch) >= b.cfg.BatchSize {
			batch = b.flush(batch)
		}
	}

	for {
		select {
		case entry := <-b.queue:
			add(entry)
		case <-ticker.C:
			batch = b.flush(batch)
		case <-b.quit:
			for {
				select {
				case entry := <-b.queue:
					add(entry)
				default:
					b.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes batch and returns an empty batch to fill next.
func (b *LogBatcher) flush(batch []*model.LogEntry) []*model.LogEntry {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.WriteTimeout)
	defer cancel()

	if err := b.store.CreateLogs(ctx, batch); err != nil {
		metrics.RecordLogEntries(metrics.LogEntryFailed, len(batch))
		log.Warn().Err(err).
			Int("entries", len(batch)).
			Str("first_request_id", batch[0].RequestID).
			Msg("Failed to persist log batch")
	} else {
		metrics.RecordLogEntries(metrics.LogEntryWritten, len(batch))
	}
	return make([]*model.LogEntry, 0, b.cfg.BatchSize)
}

var (
	activeBatcher   *LogBatcher
	activeBatcherMu sync.RWMutex
)

// StartLogBatcher makes a new batcher for store the one used by the request
// and audit loggers, stopping any previous one.
func StartLogBatcher(store service.LoggingService, cfg LogBatcherConfig) {
	next := NewLogBatcher(store, cfg)

	activeBatcherMu.Lock()
	prev := activeBatcher
	activeBatcher = next
	activeBatcherMu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// ActiveLogBatcher returns the running batcher, or nil.
func ActiveLogBatcher() *LogBatcher {
	activeBatcherMu.RLock()
	defer activeBatcherMu.RUnlock()
	return activeBatcher
}

// StopLogBatcher drains and clears the running batcher. Safe to call when
// none is running.
func StopLogBatcher() {
	activeBatcherMu.Lock()
	prev := activeBatcher
	activeBatcher = nil
	activeBatcherMu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}
