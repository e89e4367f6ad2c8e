package sevenseg

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Refresher calls Show on a fixed interval from its own goroutine, for
// programs without a timer interrupt of their own. All pin writes then
// happen on the refresher goroutine; other goroutines may still mutate
// the display state, under the limits described in the package
// documentation.
type Refresher struct {
	display  *Display
	interval time.Duration
	clock    clockwork.Clock
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	err      error
}

// NewRefresher returns a refresher that ticks at the given interval. An
// interval of zero or less selects the display's MinRefreshInterval.
func NewRefresher(d *Display, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = d.MinRefreshInterval()
	}
	return &Refresher{
		display:  d,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetClock replaces the wall clock, so tests can drive the refresher
// with a fake clock. Must be called before Start.
func (r *Refresher) SetClock(clock clockwork.Clock) {
	r.clock = clock
}

// Start launches the refresh loop. The loop runs until Stop is called
// or a pin write fails.
func (r *Refresher) Start() {
	go r.run()
}

func (r *Refresher) run() {
	defer close(r.done)

	next := r.clock.After(r.interval)
	for {
		select {
		case <-r.stop:
			return
		case <-next:
			if err := r.display.Show(); err != nil {
				r.err = err
				return
			}
			next = r.clock.After(r.interval)
		}
	}
}

// Stop halts the refresh loop and waits for it to finish. It returns
// the pin write error that stopped the loop early, if any. Stop may be
// called more than once.
func (r *Refresher) Stop() error {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	<-r.done
	return r.err
}
