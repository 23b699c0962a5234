package tracking

import (
	"context"
	"log/slog"
)

// LocationPusher delivers an accepted sample to the tracking backend.
type LocationPusher interface {
	Push(ctx context.Context, sample Sample) error
}

// Reporter consumes a feed of GPS samples, throttles them, and pushes the
// accepted ones. One reporter runs per courier session; it owns its throttle
// and runs in a single goroutine.
type Reporter struct {
	throttle *Throttle
	pusher   LocationPusher
	logger   *slog.Logger
}

// NewReporter creates a reporter over the given pusher.
func NewReporter(throttle *Throttle, pusher LocationPusher, logger *slog.Logger) *Reporter {
	return &Reporter{
		throttle: throttle,
		pusher:   pusher,
		logger:   logger.With("component", "location_reporter"),
	}
}

// Run consumes samples until the context is cancelled or the feed closes,
// then returns nil. A failed push is logged and dropped; the baseline has
// already advanced, so one lost report never causes a burst of retries.
func (r *Reporter) Run(ctx context.Context, samples <-chan Sample) error {
	defer r.throttle.Reset()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "Location reporting stopped")
			return nil
		case sample, ok := <-samples:
			if !ok {
				r.logger.InfoContext(ctx, "Location feed closed")
				return nil
			}

			if !r.throttle.Observe(sample) {
				continue
			}

			if err := r.pusher.Push(ctx, sample); err != nil {
				r.logger.ErrorContext(ctx, "Failed to push location", "error", err)
			}
		}
	}
}
