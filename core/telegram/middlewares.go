package telegram

import (
	"time"

	coreconfig "github.com/m3rciful/tynys/core/config"
	"github.com/m3rciful/tynys/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// DefaultMiddlewares builds the global chain: panic recovery, then the
// per-user rate limit when configured, then update logging.
func DefaultMiddlewares(cfg *coreconfig.Config, onLimited func(tele.Context) error) []Middleware {
	mws := []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
	}

	if cfg != nil && cfg.RateLimit.IntervalMS > 0 {
		mws = append(mws, Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimitMiddleware(middleware.RateLimitOptions{
				Interval:  time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
				Exclude:   cfg.RateLimit.ExcludeUpdates,
				OnLimited: onLimited,
			}),
		})
	}

	return append(mws, Middleware{Name: "logger", Use: middleware.LoggerMiddleware})
}
