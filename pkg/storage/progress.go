package storage

import (
	"io"
	"sync"
)

// progressReader reports read progress as a percentage of the declared
// total, capped at 90 so completion is only ever signalled by the caller
// once the remote write has actually finished.
type progressReader struct {
	reader io.Reader
	total  int64
	read   int64
	last   int
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 {
		p.read += int64(n)
		percent := int(p.read * 100 / p.total)
		if percent > 90 {
			percent = 90
		}
		if percent != p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}

// ProgressFunc receives a full snapshot of per-file progress whenever any
// single file advances, e.g. {"video": 42, "thumbnail": 100}.
type ProgressFunc func(snapshot map[string]int)

// ProgressTracker aggregates the progress of the named file uploads that
// make up one create/update operation. Each slot gets its own callback to
// hand to Upload; every tick fans out a copy of the whole snapshot.
type ProgressTracker struct {
	mu     sync.Mutex
	slots  map[string]int
	notify ProgressFunc
}

func NewProgressTracker(notify ProgressFunc) *ProgressTracker {
	return &ProgressTracker{
		slots:  make(map[string]int),
		notify: notify,
	}
}

// Slot registers a named file kind at 0% and returns its per-file callback.
func (t *ProgressTracker) Slot(name string) func(int) {
	t.mu.Lock()
	t.slots[name] = 0
	t.mu.Unlock()

	return func(percent int) {
		t.mu.Lock()
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		t.slots[name] = percent
		snapshot := t.snapshotLocked()
		notify := t.notify
		t.mu.Unlock()

		if notify != nil {
			notify(snapshot)
		}
	}
}

// Snapshot returns a copy of the current per-slot percentages.
func (t *ProgressTracker) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *ProgressTracker) snapshotLocked() map[string]int {
	out := make(map[string]int, len(t.slots))
	for k, v := range t.slots {
		out[k] = v
	}
	return out
}
