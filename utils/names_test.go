package utils

import "testing"

func TestNameFactory(t *testing.T) {
	f := NewNameFactory("game_board")
	for _, want := range []string{"game_board", "game_board_(1)", "game_board_(2)"} {
		if got := f.Next(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
