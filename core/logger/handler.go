package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

type logFormat string

const (
	formatJSON logFormat = "json"
	formatKV   logFormat = "kv"

	timeFormatMillis = "2006-01-02T15:04:05.000Z07:00"
)

type field struct {
	key   string
	value any
}

// record collects the fields of one log line. Later writes to a key replace
// earlier ones, except for context fields which never override attributes.
type record struct {
	fields []field
	index  map[string]int
}

func newRecord() *record {
	return &record{index: make(map[string]int, 16)}
}

func (r *record) set(key string, value any) {
	if i, ok := r.index[key]; ok {
		r.fields[i].value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, field{key, value})
}

func (r *record) setDefault(key string, value any) {
	if _, ok := r.index[key]; !ok {
		r.set(key, value)
	}
}

func (r *record) str(key string) string {
	if i, ok := r.index[key]; ok {
		if s, ok := r.fields[i].value.(string); ok {
			return s
		}
	}
	return ""
}

// sorted returns non-empty fields, keys from order first and the rest by name.
func (r *record) sorted(order map[string]int) []field {
	out := make([]field, 0, len(r.fields))
	for _, f := range r.fields {
		if s, ok := f.value.(string); ok && s == "" {
			continue
		}
		if f.value == nil {
			continue
		}
		out = append(out, f)
	}
	rank := func(k string) int {
		if i, ok := order[k]; ok {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(out, func(a, b field) int {
		ra, rb := rank(a.key), rank(b.key)
		if ra != rb {
			return ra - rb
		}
		if ra == len(order) {
			return strings.Compare(a.key, b.key)
		}
		return 0
	})
	return out
}

type structuredHandler struct {
	level  slog.Leveler
	out    io.Writer
	format logFormat
	order  map[string]int
	attrs  []slog.Attr
	groups []string
}

func newStructuredHandler(out io.Writer, level slog.Leveler, format logFormat, keyOrder []string) *structuredHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	order := make(map[string]int, len(keyOrder))
	for i, k := range keyOrder {
		if _, dup := order[k]; !dup {
			order[k] = i
		}
	}
	return &structuredHandler{level: level, out: out, format: format, order: order}
}

// Enabled reports whether the handler allows processing the provided level.
func (h *structuredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record and writes it as a single line.
func (h *structuredHandler) Handle(ctx context.Context, r slog.Record) error {
	rec := newRecord()
	ts := r.Time.UTC()
	rec.set("ts", ts.Truncate(time.Millisecond).Format(timeFormatMillis))
	rec.set("level", levelName(r.Level))
	if h.format == formatJSON {
		rec.set("ts_unix_nano", ts.UnixNano())
	}

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		flatten(rec, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		flatten(rec, prefix, a)
		return true
	})
	for _, f := range metaFrom(ctx).fields() {
		rec.setDefault(f.key, f.value)
	}

	if rid := rec.str("rid"); rid != "" {
		if compact := CompactRID(rid); compact != rid {
			if h.format == formatJSON {
				rec.setDefault("rid_full", rid)
			}
			rec.set("rid", compact)
		}
	}
	if rec.str("event") == "" {
		event := r.Message
		if event == "" {
			event = "unknown"
		}
		rec.set("event", event)
	}
	if rec.str("component") == "" {
		rec.set("component", "app")
	}

	fields := rec.sorted(h.order)
	var line []byte
	if h.format == formatJSON {
		var err error
		if line, err = encodeJSON(fields); err != nil {
			return err
		}
	} else {
		line = encodeKV(fields)
	}
	_, err := h.out.Write(append(line, '\n'))
	return err
}

// WithAttrs returns a shallow copy of the handler enriched with attrs.
func (h *structuredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), attrs...)
	return &clone
}

// WithGroup returns a shallow copy of the handler with an additional group prefix.
func (h *structuredHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

func flatten(rec *record, prefix string, a slog.Attr) {
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, child := range v.Group() {
			flatten(rec, key, child)
		}
		return
	}
	if key == "" {
		return
	}
	if k, val, ok := normalize(key, v); ok {
		rec.set(k, val)
	}
}

// normalize converts slog values to plain log values. Durations become
// integer milliseconds under a key ending in _ms.
func normalize(key string, v slog.Value) (string, any, bool) {
	switch v.Kind() {
	case slog.KindString:
		return key, strings.TrimSpace(v.String()), true
	case slog.KindBool:
		return key, v.Bool(), true
	case slog.KindInt64:
		return key, v.Int64(), true
	case slog.KindUint64:
		return key, v.Uint64(), true
	case slog.KindFloat64:
		return key, v.Float64(), true
	case slog.KindDuration:
		return durationKey(key), RoundMS(v.Duration()).Milliseconds(), true
	case slog.KindTime:
		return key, v.Time().UTC().Format(time.RFC3339Nano), true
	}
	switch x := v.Any().(type) {
	case nil:
		return key, nil, false
	case error:
		return key, x.Error(), true
	case time.Duration:
		return durationKey(key), RoundMS(x).Milliseconds(), true
	case fmt.Stringer:
		return key, x.String(), true
	default:
		return key, fmt.Sprint(x), true
	}
}

func durationKey(key string) string {
	switch {
	case key == "duration":
		return "duration_ms"
	case strings.HasSuffix(key, "_ms"):
		return key
	default:
		return key + "_ms"
	}
}

func encodeJSON(fields []field) ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range fields {
		data, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendQuote(buf, f.key)
		buf = append(buf, ':')
		buf = append(buf, data...)
	}
	return append(buf, '}'), nil
}

func encodeKV(fields []field) []byte {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		s := fmt.Sprint(f.value)
		if strings.IndexFunc(s, needsQuote) >= 0 {
			s = strconv.Quote(s)
		}
		b.WriteString(s)
	}
	return []byte(b.String())
}

func needsQuote(r rune) bool {
	return r <= ' ' || r == '=' || r == '"'
}
