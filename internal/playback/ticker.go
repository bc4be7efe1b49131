package playback

import (
	"context"
	"sync"
	"time"
)

// Ticker calls Controller.Tick at the controller's current speed until
// playback stops, the context ends or Stop is called. A Ticker runs once.
type Ticker struct {
	ctrl *Controller
	stop chan struct{}
	done chan struct{}
	once sync.Once

	mu      sync.Mutex
	started bool
	stopped bool
}

func NewTicker(c *Controller) *Ticker {
	return &Ticker{
		ctrl: c,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start runs the ticker in its own goroutine.
func (t *Ticker) Start(ctx context.Context) error {
	run, err := t.begin()
	if !run {
		return err
	}
	go t.loop(ctx)
	return nil
}

// Run blocks until playback is no longer running. It returns ctx.Err() when
// the context ended first.
func (t *Ticker) Run(ctx context.Context) error {
	run, err := t.begin()
	if !run {
		return err
	}
	return t.loop(ctx)
}

// begin marks the ticker used. A ticker stopped before it began closes
// done without looping.
func (t *Ticker) begin() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return false, ErrTickerReused
	}
	t.started = true
	if t.stopped {
		close(t.done)
		return false, nil
	}
	return true, nil
}

// Stop ends the loop and waits for it to exit. It is safe to call more than
// once, and before the ticker ever started.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })

	t.mu.Lock()
	t.stopped = true
	started := t.started
	t.mu.Unlock()

	if started {
		<-t.done
	}
}

// Done is closed once the loop has exited.
func (t *Ticker) Done() <-chan struct{} { return t.done }

func (t *Ticker) loop(ctx context.Context) error {
	defer close(t.done)

	for t.ctrl.Status() == Playing {
		// Speed is read before arming so a change applies from the next tick.
		timer := time.NewTimer(t.ctrl.Speed())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-t.stop:
			timer.Stop()
			return nil
		case <-timer.C:
			if !t.ctrl.Tick() {
				return nil
			}
		}
	}
	return nil
}
