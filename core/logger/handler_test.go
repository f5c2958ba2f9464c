package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, format logFormat) *slog.Logger {
	return slog.New(newStructuredHandler(buf, slog.LevelDebug, format, defaultKeyOrder))
}

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)
	ctx = WithFlowMode(ctx, "quiz")

	log := newTestLogger(buf, formatKV).With("component", "flow")
	LogEvent(ctx, log, slog.LevelInfo, "quiz.answer",
		slog.String("status", "ok"),
		slog.Int("score", 3),
	)

	tokens := strings.Fields(strings.TrimSpace(buf.String()))
	expected := []string{"ts=", "level=INFO", "component=flow", "event=quiz.answer", "status=ok", "rid=rid-123", "update_id=42", "user_id=7", "chat_id=9", "flow_mode=quiz", "score=3"}
	if len(tokens) != len(expected) {
		t.Fatalf("tokens = %v", tokens)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
}

func TestStructuredHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithRID(Background(), BuildRID(11, 22, 33))

	log := newTestLogger(buf, formatJSON).With("component", "assistant")
	LogEvent(ctx, log, slog.LevelError, "reply",
		slog.String("err", "boom"),
		slog.Duration("duration", 1500*time.Microsecond),
		slog.String("empty", ""),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, `{"ts":`) {
		t.Fatalf("unexpected line start: %s", line)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("decode: %v (%s)", err, line)
	}
	if got["level"] != "ERROR" || got["event"] != "reply" || got["component"] != "assistant" {
		t.Fatalf("unexpected fields: %v", got)
	}
	if got["rid"] != "b.m.x" || got["rid_full"] != "11:22:33" {
		t.Fatalf("rid = %v, rid_full = %v", got["rid"], got["rid_full"])
	}
	if got["duration_ms"] != float64(2) {
		t.Fatalf("duration_ms = %v", got["duration_ms"])
	}
	if _, ok := got["empty"]; ok {
		t.Fatal("empty string field should be pruned")
	}
	if _, ok := got["ts_unix_nano"]; !ok {
		t.Fatal("json lines carry ts_unix_nano")
	}
}

func TestStructuredHandlerDefaults(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newTestLogger(buf, formatKV)
	log.WithGroup("db").Info("connected", slog.String("driver", "sqlite3"))

	line := buf.String()
	for _, want := range []string{"component=app", "event=connected", "db.driver=sqlite3"} {
		if !strings.Contains(line, want) {
			t.Fatalf("%q missing from %s", want, line)
		}
	}
}

func TestContextNeverOverridesAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithUpdateMeta(Background(), 1, 100, 200)
	log := newTestLogger(buf, formatKV)
	LogEvent(ctx, log, slog.LevelInfo, "x", slog.Int64("user_id", 5))
	if !strings.Contains(buf.String(), "user_id=5") {
		t.Fatalf("explicit attr lost: %s", buf.String())
	}
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(newStructuredHandler(buf, slog.LevelWarn, formatKV, nil))
	log.Info("skipped")
	log.Warn("kept")
	if strings.Contains(buf.String(), "skipped") || !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestQuotedValues(t *testing.T) {
	buf := &bytes.Buffer{}
	newTestLogger(buf, formatKV).Info("text", slog.String("payload", `say "hi" now`))
	if !strings.Contains(buf.String(), `payload="say \"hi\" now"`) {
		t.Fatalf("value not quoted: %s", buf.String())
	}
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler("2/5")
	allowed := 0
	for i := 0; i < 10; i++ {
		if s.Allow() {
			allowed++
		}
	}
	if allowed != 4 {
		t.Fatalf("allowed = %d, want 4", allowed)
	}
	if off := newRatioSampler("0"); !off.Allow() || !off.Allow() {
		t.Fatal("zero ratio should allow everything")
	}
	if num, den := parseRatio("bogus"); num != 1 || den != 50 {
		t.Fatalf("fallback ratio = %d/%d", num, den)
	}
	if num, den := parseRatio("10"); num != 1 || den != 10 {
		t.Fatalf("single number ratio = %d/%d", num, den)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("ab\x00c\u200bде", 4); got != "abcд" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
	if got := SanitizeLimit("a\tb\n", 10); got != "a\tb\n" {
		t.Fatalf("tab/newline dropped: %q", got)
	}
	if SanitizeLimit("abc", 0) != "" {
		t.Fatal("zero limit must yield empty string")
	}
}

func TestCompactRID(t *testing.T) {
	cases := map[string]string{
		"35:36:0": "z.10.0",
		"a:b:c":   "a:b:c",
		"1:2":     "1:2",
		"":        "",
	}
	for in, want := range cases {
		if got := CompactRID(in); got != want {
			t.Fatalf("CompactRID(%q) = %q, want %q", in, got, want)
		}
	}
}
