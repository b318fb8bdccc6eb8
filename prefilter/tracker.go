package prefilter

import "sync/atomic"

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker counts how many texts the prefilter rejects and how many it
// lets through. A filter that almost never rejects costs a scan per text
// for nothing, so once the reject rate drops below a threshold the tracker
// retires it and every later text goes straight to the matcher.
//
// Algorithm:
//  1. Count rejects and passes
//  2. Every CheckInterval texts after the warmup, compute the reject rate
//  3. If the rate is below MinRejectRate, retire the prefilter
//  4. Once retired, never re-enable (until Reset)
//
// A Tracker is safe for concurrent use.
type Tracker struct {
	inner Prefilter

	rejects atomic.Uint64
	passes  atomic.Uint64
	retired atomic.Bool

	checkInterval uint64
	minRejectRate float64
	warmupPeriod  uint64
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in texts).
	// Default: 64
	CheckInterval uint64

	// MinRejectRate is the minimum acceptable ratio of rejects to texts.
	// Default: 0.05
	MinRejectRate float64

	// WarmupPeriod is the minimum number of texts before checking.
	// Default: 256
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinRejectRate: 0.05,
		WarmupPeriod:  256,
	}
}

// NewTracker creates a tracker for inner with the default config.
//
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with a custom configuration.
//
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: max(config.CheckInterval, 1),
		minRejectRate: config.MinRejectRate,
		warmupPeriod:  config.WarmupPeriod,
	}
}

// MayMatch reports whether haystack may contain a match. It always returns
// true once the prefilter is retired.
func (t *Tracker) MayMatch(haystack []byte) bool {
	if t.retired.Load() {
		return true
	}
	if MayMatch(t.inner, haystack) {
		t.passes.Add(1)
		t.checkEffectiveness()
		return true
	}
	t.rejects.Add(1)
	return false
}

// IsActive reports whether the prefilter is still consulted.
func (t *Tracker) IsActive() bool {
	return !t.retired.Load()
}

// Stats returns the counters and the current reject rate.
func (t *Tracker) Stats() (rejects, passes uint64, rate float64, active bool) {
	rejects = t.rejects.Load()
	passes = t.passes.Load()
	if total := rejects + passes; total > 0 {
		rate = float64(rejects) / float64(total)
	}
	return rejects, passes, rate, t.IsActive()
}

// Reset clears the counters and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.rejects.Store(0)
	t.passes.Store(0)
	t.retired.Store(false)
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// checkEffectiveness runs after each pass, the only event that can lower
// the reject rate.
func (t *Tracker) checkEffectiveness() {
	passes := t.passes.Load()
	total := passes + t.rejects.Load()
	if total < t.warmupPeriod || total%t.checkInterval != 0 {
		return
	}
	if float64(total-passes)/float64(total) < t.minRejectRate {
		t.retired.Store(true)
	}
}
