// Package commands describes slash commands known to the registry.
package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command is a registered slash command.
type Command struct {
	Handler tele.HandlerFunc
	// Description is shown in the Telegram command menu.
	Description string
	// AdminOnly commands are rejected for everyone but the configured admin.
	AdminOnly bool
	// Hidden commands are routed but left out of the command menu.
	Hidden bool
	// Aliases are extra names routed to Handler, with or without the slash.
	// They never appear in the command menu.
	Aliases []string
}

// Names returns the canonical name followed by the aliases, all with a
// leading slash.
func (c Command) Names(name string) []string {
	out := make([]string, 0, 1+len(c.Aliases))
	for _, n := range append([]string{name}, c.Aliases...) {
		if n == "" {
			continue
		}
		if n[0] != '/' {
			n = "/" + n
		}
		out = append(out, n)
	}
	return out
}
