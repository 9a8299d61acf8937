// ABOUTME: Time source abstraction and the periodic display refresh loop.
// ABOUTME: Owns the running flag and guarantees no wakeups after Stop.

package main

import (
	"sync"
	"time"
)

// Clock abstracts the time source so the display and tests stay deterministic.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real local wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FormatTime renders t as zero-padded 24-hour HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// DisplayLoop wakes the UI at a fixed interval while running.
// The wake callback typically triggers a GUI redraw; the frame itself
// reads the clock, so the loop carries no time state of its own.
type DisplayLoop struct {
	clock Clock
	wake  func()

	mu       sync.Mutex
	running  bool
	interval time.Duration
	reset    chan time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewDisplayLoop creates a loop that calls wake every interval once started.
func NewDisplayLoop(clock Clock, interval time.Duration, wake func()) *DisplayLoop {
	return &DisplayLoop{
		clock:    clock,
		wake:     wake,
		interval: interval,
	}
}

// Start begins periodic wakeups. Calling Start on a running loop is a no-op.
func (l *DisplayLoop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}

	l.running = true
	l.reset = make(chan time.Duration, 1)
	l.stop = make(chan struct{})
	l.done = make(chan struct{})

	go l.run(l.interval, l.reset, l.stop, l.done)
}

func (l *DisplayLoop) run(interval time.Duration, reset chan time.Duration, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case d := <-reset:
			ticker.Reset(d)
		case <-ticker.C:
			// Re-check before waking so a Stop that raced the tick wins.
			select {
			case <-stop:
				return
			default:
			}
			l.wake()
		}
	}
}

// Stop halts the loop. Once Stop returns, no further wake calls occur.
// Stop is idempotent and safe to call from any goroutine.
func (l *DisplayLoop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	stop, done := l.stop, l.done
	l.mu.Unlock()

	close(stop)
	<-done
}

// Running reports whether the loop is active.
func (l *DisplayLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// SetInterval changes the wake interval of a running loop.
// On a stopped loop it only updates the interval used by the next Start.
func (l *DisplayLoop) SetInterval(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.interval = d
	if !l.running {
		return
	}

	// Drop a stale pending reset so the latest value wins.
	select {
	case <-l.reset:
	default:
	}
	l.reset <- d
}

// Now returns the loop's current time.
func (l *DisplayLoop) Now() time.Time {
	return l.clock.Now()
}
