package paint

import (
	"reflect"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":          TrueColor,
		"truecolor": TrueColor,
		"256":       ANSI256,
		"NONE":      NoColor,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("cga"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestForeground(t *testing.T) {
	c := RGB(1, 2, 3)
	if got := c.Foreground(TrueColor); !reflect.DeepEqual(got, []int{38, 2, 1, 2, 3}) {
		t.Fatalf("truecolor params = %v", got)
	}
	if got := Red.Foreground(ANSI256); !reflect.DeepEqual(got, []int{38, 5, 196}) {
		t.Fatalf("256 params = %v, want [38 5 196]", got)
	}
	if got := c.Foreground(NoColor); got != nil {
		t.Fatalf("none params = %v, want nil", got)
	}
	if got := None.Foreground(TrueColor); got != nil {
		t.Fatalf("unset color params = %v, want nil", got)
	}
}

func TestANSI256ExactEntries(t *testing.T) {
	tests := []struct {
		c    Color
		want uint8
	}{
		{Black, 16},
		{White, 231},
		{Red, 196},
		{RGB(128, 128, 128), 244},
		{RGB(95, 135, 175), 67},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI256(); got != tt.want {
			t.Fatalf("ANSI256(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
