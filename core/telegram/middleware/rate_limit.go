package middleware

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	coreconfig "github.com/m3rciful/tynys/core/config"
	"github.com/m3rciful/tynys/core/logger"
	tghelpers "github.com/m3rciful/tynys/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// RateLimitOptions configures behaviour of the rate limit middleware.
type RateLimitOptions struct {
	Interval time.Duration
	// Exclude lists update kinds (coreconfig.UpdateCallback, UpdateMessage)
	// that are never limited.
	Exclude   []string
	OnLimited tele.HandlerFunc
}

// limiter remembers when each user was last let through. Entries older than
// the interval are swept once the map grows past sweepAt.
type limiter struct {
	mu       sync.Mutex
	interval time.Duration
	seen     map[int64]time.Time
	sweepAt  int
	now      func() time.Time
}

func newLimiter(interval time.Duration) *limiter {
	return &limiter{interval: interval, seen: make(map[int64]time.Time), sweepAt: 1024, now: time.Now}
}

func (l *limiter) allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if last, ok := l.seen[userID]; ok && now.Sub(last) < l.interval {
		return false
	}
	l.seen[userID] = now
	if len(l.seen) >= l.sweepAt {
		for id, t := range l.seen {
			if now.Sub(t) >= l.interval {
				delete(l.seen, id)
			}
		}
		l.sweepAt = max(1024, 2*len(l.seen))
	}
	return true
}

func updateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return coreconfig.UpdateCallback
	case c.Message() != nil:
		return coreconfig.UpdateMessage
	}
	return "other"
}

// RateLimitMiddleware returns a middleware that enforces a minimum interval
// between updates from the same user. Limited updates are dropped after
// OnLimited runs.
func RateLimitMiddleware(opts RateLimitOptions) tele.MiddlewareFunc {
	l := newLimiter(opts.Interval)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || opts.Interval <= 0 {
				return next(c)
			}
			kind := updateKind(c)
			if slices.Contains(opts.Exclude, kind) || l.allow(user.ID) {
				return next(c)
			}

			logger.Warn(tghelpers.BuildContext(c), "tg", "rate_limit",
				slog.String("status", "rate_limited"),
				slog.String("kind", kind),
			)
			if opts.OnLimited != nil {
				_ = opts.OnLimited(c)
			}
			return nil
		}
	}
}
