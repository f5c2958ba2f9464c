package commands

import (
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	cmd := Command{Aliases: []string{"statistics", "/stat", ""}}
	if got := strings.Join(cmd.Names("stats"), ","); got != "/stats,/statistics,/stat" {
		t.Fatalf("Names = %s", got)
	}
	if got := cmd.Names(""); len(got) != 2 {
		t.Fatalf("aliases only = %v", got)
	}
}
