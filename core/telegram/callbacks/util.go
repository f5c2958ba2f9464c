// Package callbacks encodes and decodes inline button payloads of the form
// "namespace:value". Telebot's own "\f<unique>|<payload>" form is accepted too.
package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Separator splits the namespace from the value.
const Separator = ":"

// Data builds a callback payload for an inline button.
func Data(namespace, value string) string {
	return namespace + Separator + value
}

// Parse splits raw callback data into namespace and value.
// Data without a separator yields the whole string as namespace.
func Parse(raw string) (string, string) {
	// The form feed is whitespace, so it must be checked before trimming.
	if rest, ok := strings.CutPrefix(raw, "\f"); ok {
		unique, payload, _ := strings.Cut(rest, "|")
		return strings.TrimSpace(unique), payload
	}
	raw = strings.TrimSpace(raw)
	ns, value, found := strings.Cut(raw, Separator)
	if !found {
		return raw, ""
	}
	return strings.TrimSpace(ns), strings.TrimSpace(value)
}

// ParseCallback is Parse applied to a Telegram callback. cb.Unique wins when
// telebot already resolved it.
func ParseCallback(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	return Parse(cb.Data)
}

// Namespace returns the namespace of the current callback.
func Namespace(c tele.Context) string {
	ns, _ := ParseCallback(c.Callback())
	return ns
}

// Value returns the value part of the current callback.
func Value(c tele.Context) string {
	_, v := ParseCallback(c.Callback())
	return v
}
