// Package tracking implements courier-side geolocation reporting: a
// displacement/interval throttle that decides which GPS samples are worth
// sending, and a reporter loop that pushes accepted samples to the server.
package tracking

import (
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"
)

// Default throttle tuning. A sample must be both old enough and far enough
// from the last accepted one, except that after five idle intervals a
// heartbeat goes out even from a parked vehicle.
const (
	DefaultMinInterval     = 3 * time.Second
	DefaultMinDisplacement = 3.0 // meters
	forceIntervalFactor    = 5
)

// Sample is one GPS reading.
type Sample struct {
	Point kernel.GeoPoint
	At    time.Time
}

// Config tunes the throttle. ForceInterval caps how long the throttle can
// stay silent regardless of movement.
type Config struct {
	MinInterval     time.Duration
	MinDisplacement float64
	ForceInterval   time.Duration
}

// DefaultConfig returns the production tuning: 3s / 3m with a 15s heartbeat.
func DefaultConfig() Config {
	return Config{
		MinInterval:     DefaultMinInterval,
		MinDisplacement: DefaultMinDisplacement,
		ForceInterval:   forceIntervalFactor * DefaultMinInterval,
	}
}

// Validate checks the config for usable values.
func (c Config) Validate() error {
	if c.MinInterval <= 0 {
		return errs.NewValueIsRequiredError("minInterval")
	}
	if c.MinDisplacement < 0 {
		return errs.NewValueIsOutOfRangeError("minDisplacement", c.MinDisplacement, 0, nil)
	}
	if c.ForceInterval < c.MinInterval {
		return errs.NewValueIsOutOfRangeError("forceInterval", c.ForceInterval, c.MinInterval, nil)
	}
	return nil
}

// Throttle decides which samples to report. It keeps one baseline, the last
// accepted sample, and measures every candidate against it. Not safe for
// concurrent use; the reporter owns it from a single goroutine.
type Throttle struct {
	config   Config
	baseline *Sample
}

// NewThrottle creates a throttle with the given tuning.
func NewThrottle(config Config) (*Throttle, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Throttle{config: config}, nil
}

// Observe decides whether the sample should be reported and, when it should,
// advances the baseline to it. The first sample is always accepted. After
// that a sample passes when it is both MinInterval old and MinDisplacement
// away from the baseline, or when ForceInterval has elapsed regardless of
// movement.
func (t *Throttle) Observe(sample Sample) bool {
	if t.baseline == nil {
		t.baseline = &sample
		return true
	}

	elapsed := sample.At.Sub(t.baseline.At)
	if elapsed < t.config.MinInterval {
		return false
	}

	if elapsed < t.config.ForceInterval {
		displacement := sample.Point.DistanceTo(t.baseline.Point)
		if displacement < t.config.MinDisplacement {
			return false
		}
	}

	t.baseline = &sample
	return true
}

// Reset clears the baseline so the next sample is reported unconditionally.
// Called when reporting resumes after an eligibility gap.
func (t *Throttle) Reset() {
	t.baseline = nil
}
