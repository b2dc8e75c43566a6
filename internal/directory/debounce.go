package directory

import (
	"strings"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long search input must stay unchanged before it
// is committed. Directory sessions keep it within [MinQuietPeriod, MaxQuietPeriod].
const (
	DefaultQuietPeriod = 250 * time.Millisecond
	MinQuietPeriod     = 250 * time.Millisecond
	MaxQuietPeriod     = 300 * time.Millisecond
)

// ClampQuietPeriod pulls d into the directory's search window.
func ClampQuietPeriod(d time.Duration) time.Duration {
	switch {
	case d < MinQuietPeriod:
		return MinQuietPeriod
	case d > MaxQuietPeriod:
		return MaxQuietPeriod
	}
	return d
}

type stopper interface {
	Stop() bool
}

type afterFunc func(time.Duration, func()) stopper

func realAfter(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Debouncer turns keystroke-level input into committed queries. Every Input
// restarts the quiet period, so only the latest value can be committed, and
// a commit equal to the previous one is dropped.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	after     afterFunc
	timer     stopper
	gen       uint64
	pending   string
	committed string
	stopped   bool
	commit    func(string)
}

func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{
		delay:  delay,
		after:  realAfter,
		commit: commit,
	}
}

// Input records the raw field value and restarts the quiet period.
func (d *Debouncer) Input(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.gen++
	gen := d.gen
	d.pending = raw

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.after(d.delay, func() { d.fire(gen) })
}

// Pending is the latest raw value, for echoing back to the text field.
func (d *Debouncer) Pending() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Committed is the last effective query.
func (d *Debouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// Stop cancels any pending commit. Later input is ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// a newer keystroke superseded this timer
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil

	value := strings.TrimSpace(d.pending)
	if value == d.committed {
		d.mu.Unlock()
		return
	}
	d.committed = value
	d.mu.Unlock()

	d.commit(value)
}
