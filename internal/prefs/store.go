package prefs

import (
	"log/slog"
	"sync"
	"time"
)

// ChangeReason indicates what caused a store change.
type ChangeReason int

const (
	// ChangeSet indicates a single key was set.
	ChangeSet ChangeReason = iota
	// ChangeHydrate indicates keys were restored from durable storage.
	ChangeHydrate
	// ChangePreset indicates a preset replaced the display keys.
	ChangePreset
)

// ChangeEvent signals preference changes to subscribers.
type ChangeEvent struct {
	Reason ChangeReason
	Keys   []Key
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce coalesces persists per key within the given window.
// The default (0) writes through immediately.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		s.debounce = d
	}
}

// Store holds the authoritative in-memory preference snapshot and keeps
// it synchronized with durable storage. Reads and writes never block on
// storage I/O; persists run on a background writer whose failures are
// swallowed (durability is best-effort, the next Set retries).
type Store struct {
	mu          sync.RWMutex
	snap        Snapshot
	persistence Persistence
	subscribers []chan ChangeEvent
	closed      bool

	writeCh  chan Record
	writerWG sync.WaitGroup
	debounce time.Duration

	lastRev     string
	lastWriteAt time.Time
}

// NewStore creates a Store with the supplied defaults. It returns
// immediately; callers render with defaults until Hydrate completes.
// persistence may be nil for an in-memory-only store.
func NewStore(defaults Snapshot, persistence Persistence, opts ...Option) *Store {
	s := &Store{
		snap:        defaults,
		persistence: persistence,
		subscribers: make([]chan ChangeEvent, 0),
		writeCh:     make(chan Record, 256),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.writerWG.Add(1)
	go s.writeLoop()

	return s
}

// Snapshot returns a copy of the current preference snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Get returns the serialized current value for key. It never fails;
// unknown keys return the empty string.
func (s *Store) Get(key Key) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Value(key)
}

// Set parses and clamps raw for key, updates the in-memory snapshot,
// and schedules a durable write of that key. Out-of-domain numeric
// values are silently clamped; unknown keys and unparseable enum
// values error.
func (s *Store) Set(key Key, raw string) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	if err := s.snap.setValue(key, raw); err != nil {
		s.mu.Unlock()
		return err
	}

	rec := NewRecord(key, s.snap.Value(key))
	s.notifyChange(ChangeEvent{Reason: ChangeSet, Keys: []Key{key}})
	s.mu.Unlock()

	s.schedulePersist(rec)
	return nil
}

// Adjust steps a numeric key by n control steps, clamped into domain.
// Non-numeric keys are ignored.
func (s *Store) Adjust(key Key, n int) error {
	d, ok := DomainOf(key)
	if !ok {
		return nil
	}

	s.mu.RLock()
	cur, _ := s.snap.Number(key)
	s.mu.RUnlock()

	return s.Set(key, FormatNumber(d.Quantize(d.Clamp(cur+float64(n)*d.Step))))
}

// CycleTheme advances the theme to the next choice in order.
func (s *Store) CycleTheme() error {
	cur := Theme(s.Get(KeyTheme))
	for i, t := range Themes {
		if t == cur {
			return s.Set(KeyTheme, string(Themes[(i+1)%len(Themes)]))
		}
	}
	return s.Set(KeyTheme, string(Themes[0]))
}

// CycleFontFamily advances the font family to the next choice in order.
func (s *Store) CycleFontFamily() error {
	cur := FontFamily(s.Get(KeyFontFamily))
	for i, f := range FontFamilies {
		if f == cur {
			return s.Set(KeyFontFamily, string(FontFamilies[(i+1)%len(FontFamilies)]))
		}
	}
	return s.Set(KeyFontFamily, string(FontFamilies[0]))
}

// SetValues applies several keys as a single observable unit: one lock
// hold, one change event, one persist record per key. Keys that fail to
// parse are skipped so the rest of the batch still applies.
func (s *Store) SetValues(values map[Key]string, reason ChangeReason) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	var applied []Key
	var records []Record
	for _, k := range Keys {
		raw, ok := values[k]
		if !ok {
			continue
		}
		if err := s.snap.setValue(k, raw); err != nil {
			slog.Debug("skipping value in batch", "key", k, "error", err)
			continue
		}
		applied = append(applied, k)
		records = append(records, NewRecord(k, s.snap.Value(k)))
	}

	if len(applied) > 0 {
		s.notifyChange(ChangeEvent{Reason: reason, Keys: applied})
	}
	s.mu.Unlock()

	for _, rec := range records {
		s.schedulePersist(rec)
	}
	return nil
}

// Hydrate loads persisted records and overwrites the in-memory value
// for each key that parses cleanly. Failures are isolated per key:
// a corrupt record for one key never aborts hydration of the rest.
// Records returned alongside a Load error are still applied, so a
// problem at the tail of the file never discards healthy records
// before it. Idempotent and safe to run again (e.g. after an external
// file change).
func (s *Store) Hydrate() error {
	if s.persistence == nil {
		return nil
	}

	records, loadErr := s.persistence.Load()

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	restored := make(map[Key]bool)
	for _, r := range records {
		k, ok := ParseStorageKey(r.Key)
		if !ok {
			continue
		}
		// Records are in write order; the last one per key wins.
		if err := s.snap.setValue(k, r.Value); err != nil {
			slog.Debug("skipping corrupt record", "key", r.Key, "error", err)
			continue
		}
		restored[k] = true
		if r.Rev > s.lastRev {
			s.lastRev = r.Rev
			s.lastWriteAt = time.Unix(r.WrittenAt, 0)
		}
	}

	if len(restored) > 0 {
		keys := make([]Key, 0, len(restored))
		for _, k := range Keys {
			if restored[k] {
				keys = append(keys, k)
			}
		}
		s.notifyChange(ChangeEvent{Reason: ChangeHydrate, Keys: keys})
	}
	s.mu.Unlock()

	return loadErr
}

// notifyChange fans an event out to subscribers without blocking.
// Callers hold s.mu.
func (s *Store) notifyChange(ev ChangeEvent) {
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe returns a channel that receives change events. Events are
// dropped for slow subscribers rather than blocking the store.
func (s *Store) Subscribe() <-chan ChangeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan ChangeEvent, 10)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (s *Store) Unsubscribe(ch <-chan ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// LastWrite reports the revision and time of the newest durable record
// observed, for status display. Zero values mean nothing persisted yet.
func (s *Store) LastWrite() (rev string, at time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRev, s.lastWriteAt
}

// Close drains pending writes, compacts the records file to one record
// per key, and closes persistence and all subscriber channels.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true

	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
	snap := s.snap
	s.mu.Unlock()

	close(s.writeCh)
	s.writerWG.Wait()

	if s.persistence == nil {
		return nil
	}

	// Final persist: compact to exactly one record per key.
	records := make([]Record, 0, len(Keys))
	for _, k := range Keys {
		records = append(records, NewRecord(k, snap.Value(k)))
	}
	if err := s.persistence.Rewrite(records); err != nil {
		slog.Warn("failed to compact preference records", "error", err)
	}

	return s.persistence.Close()
}

// schedulePersist hands a record to the background writer without
// blocking. If the queue is full the write is dropped; only durability
// is lost and the next Set on that key writes again.
func (s *Store) schedulePersist(rec Record) {
	if s.persistence == nil {
		return
	}

	// Holding the read lock keeps Close from closing writeCh mid-send.
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.writeCh <- rec:
	default:
		slog.Debug("persist queue full, dropping write", "key", rec.Key)
	}
}

// writeLoop is the background persist writer. With debouncing enabled
// it coalesces rapid writes per key within the window, so dragging a
// control produces one durable write instead of dozens.
func (s *Store) writeLoop() {
	defer s.writerWG.Done()

	if s.debounce <= 0 {
		for rec := range s.writeCh {
			s.write(rec)
		}
		return
	}

	pending := make(map[string]Record)
	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	flush := func() {
		for _, rec := range pending {
			s.write(rec)
		}
		clear(pending)
	}

	for {
		select {
		case rec, ok := <-s.writeCh:
			if !ok {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				flush()
				return
			}
			if len(pending) == 0 {
				timer.Reset(s.debounce)
			}
			pending[rec.Key] = rec

		case <-timer.C:
			flush()
		}
	}
}

// write performs one durable write, swallowing failures.
func (s *Store) write(rec Record) {
	if err := s.persistence.Write(rec); err != nil {
		// Best-effort: in-memory state stays correct, no retry.
		slog.Warn("failed to persist preference", "key", rec.Key, "error", err)
		return
	}

	s.mu.Lock()
	if rec.Rev > s.lastRev {
		s.lastRev = rec.Rev
		s.lastWriteAt = time.Unix(rec.WrittenAt, 0)
	}
	s.mu.Unlock()
}
