package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw       string
		namespace string
		value     string
	}{
		{"mood:great", "mood", "great"},
		{"quiz_answer:yes", "quiz_answer", "yes"},
		{"lang:ru", "lang", "ru"},
		{"menu:back", "menu", "back"},
		{"menu", "menu", ""},
		{"a:b:c", "a", "b:c"},
		{"\fmood|bad", "mood", "bad"},
		{"\fping", "ping", ""},
		{"\fstress|yes", "stress", "yes"},
		{" cause : work ", "cause", "work"},
		{"", "", ""},
	}
	for _, tt := range tests {
		ns, v := Parse(tt.raw)
		if ns != tt.namespace || v != tt.value {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.raw, ns, v, tt.namespace, tt.value)
		}
	}
}

func TestDataRoundTrip(t *testing.T) {
	ns, v := Parse(Data("cause", "work"))
	if ns != "cause" || v != "work" {
		t.Fatalf("got (%q, %q)", ns, v)
	}
}

func TestParseCallbackPrefersUnique(t *testing.T) {
	ns, v := ParseCallback(&tele.Callback{Unique: "stress", Data: "yes"})
	if ns != "stress" || v != "yes" {
		t.Fatalf("got (%q, %q)", ns, v)
	}
	if ns, v := ParseCallback(nil); ns != "" || v != "" {
		t.Fatalf("nil callback parsed to (%q, %q)", ns, v)
	}
}
