package telegram

import (
	"testing"

	"github.com/m3rciful/tynys/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegistryCommands(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCommand("/stats", commands.Command{Handler: noop, Description: "stats", Aliases: []string{"statistics"}}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCommand("/status", commands.Command{Handler: noop, Description: "status", AdminOnly: true}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCommand("stats", commands.Command{Handler: noop, Description: "x"}); err == nil {
		t.Fatal("expected error for missing slash")
	}
	if err := reg.RegisterCommand("/stats", commands.Command{Handler: noop, Description: "dup"}); err == nil {
		t.Fatal("expected duplicate error")
	}

	for _, text := range []string{"/stats", "/stats@tynys_bot", "/stats now", "/statistics"} {
		if key, _, ok := reg.LookupCommand(text); !ok || key != "/stats" {
			t.Errorf("LookupCommand(%q) = %q, %v", text, key, ok)
		}
	}
	if _, _, ok := reg.LookupCommand("stats"); ok {
		t.Error("plain text must not resolve to a command")
	}

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "stats" {
		t.Fatalf("visible commands = %+v", visible)
	}
}

func TestRegistryCallbacks(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("mood", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("mood", noop); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, ok := reg.GetCallback("mood"); !ok {
		t.Fatal("mood handler missing")
	}
	if got := reg.ListCallbacks(); len(got) != 1 || got[0] != "mood" {
		t.Fatalf("ListCallbacks = %v", got)
	}
}
