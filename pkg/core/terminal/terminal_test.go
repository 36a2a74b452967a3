package terminal

import (
	"strings"
	"testing"
)

func TestTerminal_Color(t *testing.T) {
	t.Run("colors enabled", func(t *testing.T) {
		term := &Terminal{noColor: false}
		got := term.Color(Green, "ok")
		want := Green + "ok" + Reset
		if got != want {
			t.Errorf("Color() = %q, want %q", got, want)
		}
	})

	t.Run("colors disabled", func(t *testing.T) {
		term := &Terminal{noColor: true}
		got := term.Color(Green, "ok")
		if got != "ok" {
			t.Errorf("Color() = %q, want %q", got, "ok")
		}
	})
}

func TestTerminal_New(t *testing.T) {
	term := New()
	if term == nil {
		t.Fatal("New() returned nil")
	}
	if term.width <= 0 {
		t.Error("New() should set a positive width")
	}
}

func TestIconConstants(t *testing.T) {
	if IconSuccess == "" || IconFailed == "" || IconWarning == "" {
		t.Error("icon constants must not be empty")
	}
}

func TestColorConstants(t *testing.T) {
	for name, c := range map[string]string{
		"Reset": Reset, "Bold": Bold, "Dim": Dim,
		"Red": Red, "Green": Green, "Yellow": Yellow, "Blue": Blue,
	} {
		if !strings.HasPrefix(c, "\033[") {
			t.Errorf("%s should be an ANSI escape sequence, got %q", name, c)
		}
	}
}

func TestTerminal_Divider(t *testing.T) {
	term := &Terminal{noColor: true, width: 10}
	// Just confirm it doesn't panic with a narrow width.
	term.Divider()
}
