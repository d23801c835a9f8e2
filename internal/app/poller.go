package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thiagom05/IceCore/internal/catalog"
)

const (
	defaultPollInterval = time.Hour
	minPollInterval     = time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that revalidates the catalog
// at a fixed cadence. The first refresh runs immediately; while the cache
// is within its TTL a poll is a cheap disk check, so ticking at the TTL
// keeps the catalog from going stale without user action. It returns
// immediately.
func StartPoller(ctx context.Context, cache *catalog.Cache, interval time.Duration, log *logrus.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if interval < minPollInterval {
		interval = minPollInterval
	}
	go func() {
		failures := 0
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := cache.Refresh(ctx, false); err != nil {
				failures++
				log.WithField("failures", failures).Debug("catalog poll failed")
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles the wait per consecutive failure so an
// unreachable backend is not hammered. Short base intervals cap at
// maxBackoff; an interval already above the cap is left alone.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			break
		}
	}
	limit := maxBackoff
	if base > limit {
		limit = base
	}
	if wait > limit {
		wait = limit
	}
	return wait
}
