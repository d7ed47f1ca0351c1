package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
)

// DefaultQuietInterval is how long edits must settle before a write.
const DefaultQuietInterval = 400 * time.Millisecond

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithQuietInterval overrides the debounce interval.
func WithQuietInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.quiet = d
	}
}

// WithErrorHandler installs a callback for persistence failures. Failures
// are non-fatal either way; the handler exists so the surrounding screen
// can surface a transient notice.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Scheduler) {
		s.onError = fn
	}
}

// Scheduler coalesces bursts of record edits into a single persisted
// write per settled burst. RecordChanged nets at most one live timer;
// writes are sequence-tagged so a stale write can never land over a
// newer committed one.
type Scheduler struct {
	store   storage.Store
	onError func(error)
	pending *Delay
	quiet   time.Duration

	mu          sync.Mutex
	writeMu     sync.Mutex
	seq         uint64
	committed   uint64
	latestKey   string
	latestValue string
	closed      bool
}

// NewScheduler creates a scheduler writing to the given store.
func NewScheduler(store storage.Store, opts ...Option) *Scheduler {
	s := &Scheduler{
		store: store,
		quiet: DefaultQuietInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordChanged notes an edit: it snapshots the record, cancels any
// pending timer, and arms a fresh one for the quiet interval. If no
// further edit arrives before it fires, exactly one write of this
// snapshot happens.
func (s *Scheduler) RecordChanged(rec model.Record) {
	data, err := model.ToPayload(rec).Marshal()
	if err != nil {
		s.report(err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.pending != nil {
		s.pending.Cancel()
	}

	s.seq++
	seq := s.seq
	s.latestKey = storage.RecordKey(rec.ID)
	s.latestValue = string(data)

	key, value := s.latestKey, s.latestValue
	s.pending = After(s.quiet, func() {
		s.write(key, value, seq)
	})
}

// Flush synchronously writes the latest snapshot if it has not been
// committed yet. Screens that need durability on exit call this before
// teardown; Close alone drops in-flight edits.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	seq := s.seq
	key, value := s.latestKey, s.latestValue
	dirty := seq > s.committed && key != ""
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.store.Set(ctx, key, value); err != nil {
		perr := common.NewPersistenceError("set", key, err)
		s.report(perr)
		return perr
	}
	s.commit(seq)
	return nil
}

// Dirty reports whether edits newer than the last committed write exist.
func (s *Scheduler) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq > s.committed
}

// Close cancels any pending timer without writing. Edits younger than
// the quiet interval are dropped: closing means the editing session was
// abandoned. After Close the scheduler accepts no further changes.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

// write is the timer callback. The sequence check drops writes that lost
// to a newer one; writeMu keeps concurrent writes from interleaving on
// an asynchronous store.
func (s *Scheduler) write(key, value string, seq uint64) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	stale := s.closed || seq <= s.committed
	s.mu.Unlock()
	if stale {
		return
	}

	if err := s.store.Set(context.Background(), key, value); err != nil {
		s.report(common.NewPersistenceError("set", key, err))
		return
	}
	s.commit(seq)
	slog.Debug("autosaved record", "key", key, "seq", seq)
}

func (s *Scheduler) commit(seq uint64) {
	s.mu.Lock()
	if seq > s.committed {
		s.committed = seq
	}
	s.mu.Unlock()
}

// report surfaces a failure without interrupting the editing session.
// The record stays dirty and the next edit re-arms the timer normally.
func (s *Scheduler) report(err error) {
	common.LogError(err, "autosave failed", nil)
	if s.onError != nil {
		s.onError(err)
	}
}
