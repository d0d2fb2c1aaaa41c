package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes which file changed.
type EventType int

const (
	// EventGoalsChanged indicates the goal file was written, replaced or
	// removed.
	EventGoalsChanged EventType = iota

	// EventSettingsChanged indicates the settings file changed.
	EventSettingsChanged
)

func (t EventType) String() string {
	switch t {
	case EventGoalsChanged:
		return "goals"
	case EventSettingsChanged:
		return "settings"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is emitted by Watch when a watched file changes.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events for the goal and settings files until ctx is
// cancelled. Bursts of writes are coalesced. Callers should drain the
// returned channel to avoid dropping events. The channel is closed once ctx
// is done or the watcher fails.
func (b *DiskBackend) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(b.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", b.basePath, err)
	}

	keys := map[string]EventType{
		GoalsKey:    EventGoalsChanged,
		SettingsKey: EventSettingsChanged,
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer re-reads the whole file, so a dropped event is
				// covered by the one still queued.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Overflow and similar errors mean we may have missed writes.
				throttle.Enqueue(Event{Type: EventGoalsChanged, Path: b.Path(GoalsKey)}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				typ, found := keys[filepath.Base(evt.Name)]
				if !found || evt.Op == fsnotify.Chmod {
					continue
				}
				throttle.Enqueue(Event{Type: typ, Path: evt.Name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// produces one refresh per file.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending[ev.Type] = ev

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	// send never blocks, so holding the lock keeps Stop from racing a flush
	// that is already under way.
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[EventType]Event)
	t.timer = nil

	for _, ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
