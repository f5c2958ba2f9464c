package telegram

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/core/telegram/netutil"
)

const (
	dialTimeout      = 5 * time.Second
	tlsTimeout       = 5 * time.Second
	idleConnTimeout  = 30 * time.Second
	keepAlive        = 30 * time.Second
	headerSlack      = 5 * time.Second
	retryAttempts    = 3
	retryBackoffStep = 2 * time.Second
)

// BuildHTTPClient returns an HTTP client for Telegram API calls. Response
// deadlines leave room for getUpdates, which Telegram holds open for up to
// pollTimeout.
func BuildHTTPClient(pollTimeout time.Duration) *http.Client {
	if pollTimeout <= 0 {
		pollTimeout = defaultLongPollTimeout
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: keepAlive}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsTimeout,
		ResponseHeaderTimeout: pollTimeout + headerSlack,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{
		Timeout:   pollTimeout + 4*headerSlack,
		Transport: &retryTransport{base: transport, attempts: retryAttempts, step: retryBackoffStep},
	}
}

// retryTransport repeats requests that failed before reaching Telegram.
// Requests whose body cannot be replayed are sent once.
type retryTransport struct {
	base     http.RoundTripper
	attempts int
	step     time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	for attempt := 1; ; attempt++ {
		resp, err := t.base.RoundTrip(req)
		if err == nil || attempt == t.attempts || !netutil.ShouldRetry(err) {
			return resp, err
		}
		if req.Body != nil && req.GetBody == nil {
			return nil, err
		}

		delay := t.step * time.Duration(attempt)
		logger.Debug(ctx, "tg.http", "retry",
			slog.Int("attempt", attempt),
			slog.String("err_kind", netutil.Kind(err)),
			slog.Duration("backoff", delay),
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		next := req.Clone(ctx)
		if req.GetBody != nil {
			if next.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}
		req = next
	}
}
