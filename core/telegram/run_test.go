package telegram

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	coreconfig "github.com/m3rciful/tynys/core/config"

	tele "gopkg.in/telebot.v4"
)

func TestBuildPoller(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Telegram.RunMode = coreconfig.RunModeLongpoll
	lp, ok := BuildPoller(cfg).(*tele.LongPoller)
	if !ok || lp.Timeout != defaultLongPollTimeout {
		t.Fatalf("long poller = %#v", lp)
	}
	cfg.Telegram.LongPollTimeoutSeconds = 25
	if lp := BuildPoller(cfg).(*tele.LongPoller); lp.Timeout != 25*time.Second {
		t.Fatalf("timeout = %v", lp.Timeout)
	}

	cfg.Telegram.RunMode = coreconfig.RunModeWebhook
	cfg.Webhook = coreconfig.WebhookConfig{URL: "https://bot.example.kz/hook", Listen: "0.0.0.0", Port: 8443}
	wh, ok := BuildPoller(cfg).(*tele.Webhook)
	if !ok || wh.Listen != "0.0.0.0:8443" || wh.Endpoint.PublicURL != "https://bot.example.kz/hook" {
		t.Fatalf("webhook = %#v", wh)
	}
	if len(wh.AllowedUpdates) != 2 {
		t.Fatalf("allowed updates = %v", wh.AllowedUpdates)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestRetryTransportReplaysBody(t *testing.T) {
	var bodies []string
	rt := &retryTransport{attempts: 3, base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if len(bodies) == 1 {
			return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		}
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})}

	req, _ := http.NewRequest(http.MethodPost, "https://api.telegram.org/botX/sendMessage", strings.NewReader("chat_id=1"))
	resp, err := rt.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("resp = %v, err = %v", resp, err)
	}
	if len(bodies) != 2 || bodies[1] != "chat_id=1" {
		t.Fatalf("bodies = %q", bodies)
	}
}

func TestRetryTransportStopsOnFinalErrors(t *testing.T) {
	calls := 0
	rt := &retryTransport{attempts: 3, base: roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("tls: bad certificate")
	})}
	req, _ := http.NewRequest(http.MethodGet, "https://api.telegram.org/botX/getMe", nil)
	if _, err := rt.RoundTrip(req); err == nil || calls != 1 {
		t.Fatalf("err = %v, calls = %d", err, calls)
	}
}
