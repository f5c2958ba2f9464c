package keyboard

import "testing"

func TestInlineButtonsNPerRow(t *testing.T) {
	btns := []InlineBtn{
		{Text: "a", Data: "x:a"},
		{Text: "b", Data: "x:b"},
		{Text: "c", Data: "x:c"},
	}
	m := InlineButtonsNPerRow(btns, 2)
	if len(m.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.InlineKeyboard))
	}
	if len(m.InlineKeyboard[0]) != 2 || len(m.InlineKeyboard[1]) != 1 {
		t.Fatalf("unexpected layout: %+v", m.InlineKeyboard)
	}
	if got := m.InlineKeyboard[1][0].Data; got != "x:c" {
		t.Fatalf("data = %q, want raw x:c", got)
	}
}

func TestReplyButtons(t *testing.T) {
	m := ReplyButtons([]string{"one", "two"}, []string{"three"})
	if !m.ResizeKeyboard {
		t.Fatal("reply keyboard should be resizable")
	}
	if len(m.ReplyKeyboard) != 2 || m.ReplyKeyboard[0][1].Text != "two" {
		t.Fatalf("unexpected keyboard: %+v", m.ReplyKeyboard)
	}
}
