//go:build !integration

package middleware

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// batchRecorder collects the batches handed to CreateLogs.
type batchRecorder struct {
	mu      sync.Mutex
	batches [][]*model.LogEntry
}

func (r *batchRecorder) record(args mock.Arguments) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, args.Get(1).([]*model.LogEntry))
}

func (r *batchRecorder) sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sizes := make([]int, len(r.batches))
	for i, b := range r.batches {
		sizes[i] = len(b)
	}
	return sizes
}

func (r *batchRecorder) total() int {
	n := 0
	for _, size := range r.sizes() {
		n += size
	}
	return n
}

func logEntriesCount(result string) float64 {
	return testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues(result))
}

func newRecordingStore(err error) (*mocks.MockLoggingService, *batchRecorder) {
	store := &mocks.MockLoggingService{}
	rec := &batchRecorder{}
	store.On("CreateLogs", mock.Anything, mock.AnythingOfType("[]*model.LogEntry")).Run(rec.record).Return(err)
	return store, rec
}

func TestDefaultLogBatcherConfig(t *testing.T) {
	cfg := DefaultLogBatcherConfig()

	assert.Equal(t, 1000, cfg.QueueSize)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewLogBatcher(t *testing.T) {
	assert.Nil(t, NewLogBatcher(nil, DefaultLogBatcherConfig()))

	store, _ := newRecordingStore(nil)
	b := NewLogBatcher(store, LogBatcherConfig{})
	require.NotNil(t, b)
	defer b.Stop()

	assert.Equal(t, DefaultLogBatcherConfig(), b.cfg)
	assert.Equal(t, 1000, cap(b.queue))
}

func TestLogBatcher_WritesFullBatches(t *testing.T) {
	store, rec := newRecordingStore(nil)
	written := logEntriesCount(metrics.LogEntryWritten)

	b := NewLogBatcher(store, LogBatcherConfig{QueueSize: 100, BatchSize: 3, FlushInterval: time.Hour, WriteTimeout: time.Second})
	for i := 0; i < 7; i++ {
		require.True(t, b.Log(&model.LogEntry{Level: "info", Message: "HTTP request"}))
	}

	assert.Eventually(t, func() bool { return rec.total() >= 6 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{3, 3}, rec.sizes())

	// The remainder is written on Stop.
	b.Stop()
	assert.Equal(t, []int{3, 3, 1}, rec.sizes())
	assert.Equal(t, written+7, logEntriesCount(metrics.LogEntryWritten))
	store.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestLogBatcher_FlushesPartialBatchOnInterval(t *testing.T) {
	store, rec := newRecordingStore(nil)

	b := NewLogBatcher(store, LogBatcherConfig{QueueSize: 10, BatchSize: 50, FlushInterval: 20 * time.Millisecond, WriteTimeout: time.Second})
	defer b.Stop()

	require.True(t, b.Log(&model.LogEntry{Level: "info", RequestID: "req-1"}))

	assert.Eventually(t, func() bool { return rec.total() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestLogBatcher_DropsWhenQueueFull(t *testing.T) {
	release := make(chan struct{})
	store := &mocks.MockLoggingService{}
	store.On("CreateLogs", mock.Anything, mock.Anything).Run(func(mock.Arguments) { <-release }).Return(nil)
	dropped := logEntriesCount(metrics.LogEntryDropped)

	b := NewLogBatcher(store, LogBatcherConfig{QueueSize: 2, BatchSize: 1, FlushInterval: time.Hour, WriteTimeout: time.Second})

	// The first entry blocks the writer; two more fill the queue.
	accepted := 0
	for i := 0; i < 10; i++ {
		if b.Log(&model.LogEntry{Level: "info"}) {
			accepted++
		}
	}

	assert.Less(t, accepted, 10)
	assert.Equal(t, dropped+float64(10-accepted), logEntriesCount(metrics.LogEntryDropped))

	close(release)
	b.Stop()
}

func TestLogBatcher_CountsFailedWrites(t *testing.T) {
	store, rec := newRecordingStore(errors.New("db error"))
	failed := logEntriesCount(metrics.LogEntryFailed)

	b := NewLogBatcher(store, LogBatcherConfig{QueueSize: 10, BatchSize: 10, FlushInterval: time.Hour, WriteTimeout: time.Second})
	for i := 0; i < 3; i++ {
		b.Log(&model.LogEntry{Level: "error"})
	}
	b.Stop()

	assert.Equal(t, []int{3}, rec.sizes())
	assert.Equal(t, failed+3, logEntriesCount(metrics.LogEntryFailed))
}

func TestLogBatcher_LogAfterStop(t *testing.T) {
	store, rec := newRecordingStore(nil)
	b := NewLogBatcher(store, DefaultLogBatcherConfig())

	assert.NotPanics(t, func() {
		b.Stop()
		b.Stop()
	})
	assert.False(t, b.Log(&model.LogEntry{Level: "info"}))
	assert.Zero(t, rec.total())
}

func TestActiveLogBatcher(t *testing.T) {
	assert.Nil(t, ActiveLogBatcher())

	first, _ := newRecordingStore(nil)
	StartLogBatcher(first, DefaultLogBatcherConfig())
	prev := ActiveLogBatcher()
	require.NotNil(t, prev)

	second, _ := newRecordingStore(nil)
	StartLogBatcher(second, DefaultLogBatcherConfig())
	current := ActiveLogBatcher()
	assert.NotSame(t, prev, current)
	assert.False(t, prev.Log(&model.LogEntry{Level: "info"}), "replaced batcher is stopped")

	StopLogBatcher()
	assert.Nil(t, ActiveLogBatcher())
	assert.NotPanics(t, StopLogBatcher)
}
