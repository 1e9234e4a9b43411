package logging

import (
	"fmt"
	"time"
)

// Timer measures the time between a start and a stop and logs it at debug
// level. A Timer is not safe for concurrent use.
type Timer struct {
	logger  Logger
	now     func() time.Time
	start   time.Time
	running bool
}

// NewTimer returns a stopped Timer that reports to logger.
func NewTimer(logger Logger) *Timer {
	return &Timer{logger: OrNop(logger), now: time.Now}
}

// Running reports whether the timer has been started and not yet stopped.
func (t *Timer) Running() bool {
	return t.running
}

// Start starts (or restarts) the timer.
func (t *Timer) Start() {
	t.start = t.now()
	t.running = true
}

// Stop stops a running timer, logs "<label> took <seconds> seconds" and
// returns the elapsed time. Stopping a stopped timer returns 0 and logs nothing.
func (t *Timer) Stop(label string) time.Duration {
	if !t.running {
		return 0
	}
	elapsed := t.now().Sub(t.start)
	t.running = false
	logElapsed(t.logger, label, elapsed)
	return elapsed
}

// Toggle starts a stopped timer or stops a running one, so paired calls
// around a block of code measure it.
func (t *Timer) Toggle(label string) {
	if t.running {
		t.Stop(label)
		return
	}
	t.Start()
}

// Timed runs fn and logs how long it took under label.
func Timed(logger Logger, label string, fn func() error) error {
	start := time.Now()
	err := fn()
	logElapsed(OrNop(logger), label, time.Since(start))
	return err
}

// TimedValue runs fn and logs how long it took under label.
func TimedValue[T any](logger Logger, label string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	logElapsed(OrNop(logger), label, time.Since(start))
	return v, err
}

func logElapsed(logger Logger, label string, elapsed time.Duration) {
	if label == "" {
		label = "Code"
	}
	logger.Debug(fmt.Sprintf("%s took %.6f seconds", label, elapsed.Seconds()), "label", label, "elapsed", elapsed)
}
