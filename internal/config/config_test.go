package config

import (
	"strings"
	"testing"

	"github.com/example/paintbox/internal/paint"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("empty config size = %dx%d, want 0x0 (use built-in defaults)", cfg.Width, cfg.Height)
	}
	if cfg.Tool != "" || cfg.PrimaryColor != "" {
		t.Errorf("empty config tool/color = %q/%q, want empty", cfg.Tool, cfg.PrimaryColor)
	}
	if cfg.Notify.Save || cfg.Notify.Copy {
		t.Errorf("notifications enabled by default, want disabled")
	}
}

func TestParseFullConfig(t *testing.T) {
	input := `
# paintbox settings
width = 800
height = 600
tool = rect
color = #ff0000
secondary_color = #000000
save_dir = /tmp/drawings

[notify]
save = true
copy = false

[palette]
crimson = #dc143c
sky = #87ceeb
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Tool != "rect" {
		t.Errorf("tool = %q, want rect", cfg.Tool)
	}
	if cfg.PrimaryColor != "#ff0000" {
		t.Errorf("color = %q, want #ff0000", cfg.PrimaryColor)
	}
	if cfg.SaveDir != "/tmp/drawings" {
		t.Errorf("save_dir = %q, want /tmp/drawings", cfg.SaveDir)
	}
	if !cfg.Notify.Save || cfg.Notify.Copy {
		t.Errorf("notify = %+v, want save on copy off", cfg.Notify)
	}
	if got := cfg.Palette["crimson"]; got != paint.RGB(0xdc, 0x14, 0x3c) {
		t.Errorf("palette crimson = %+v", got)
	}
	if names := cfg.PaletteNames(); len(names) != 2 || names[0] != "crimson" || names[1] != "sky" {
		t.Errorf("PaletteNames() = %v", names)
	}
}

func TestParseInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad width", "width = ten"},
		{"negative height", "height = -5"},
		{"unknown tool", "tool = spray"},
		{"bad color", "color = #zzzzzz"},
		{"bad notify bool", "[notify]\nsave = maybe"},
		{"bad palette color", "[palette]\nred = nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) = nil error, want error", tt.input)
			}
		})
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	cfg, err := Parse(strings.NewReader("mystery = value\nwidth = 320\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Width != 320 {
		t.Errorf("width = %d, want 320", cfg.Width)
	}
}

func TestStringRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Width = 640
	cfg.Height = 480
	cfg.Tool = "brush"
	cfg.PrimaryColor = "#0000ff"
	cfg.SaveDir = "/tmp/out"
	cfg.Notify.Save = true
	cfg.Palette["ink"] = paint.RGB(10, 20, 30)

	parsed, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Parse(String()) error: %v", err)
	}
	if parsed.Width != cfg.Width || parsed.Height != cfg.Height {
		t.Errorf("round-trip size = %dx%d, want %dx%d", parsed.Width, parsed.Height, cfg.Width, cfg.Height)
	}
	if parsed.Tool != cfg.Tool || parsed.PrimaryColor != cfg.PrimaryColor || parsed.SaveDir != cfg.SaveDir {
		t.Errorf("round-trip fields = %q/%q/%q", parsed.Tool, parsed.PrimaryColor, parsed.SaveDir)
	}
	if !parsed.Notify.Save {
		t.Errorf("round-trip lost notify.save")
	}
	if parsed.Palette["ink"] != cfg.Palette["ink"] {
		t.Errorf("round-trip palette ink = %+v", parsed.Palette["ink"])
	}
}

func TestQuotedValues(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`save_dir = "/home/user/my drawings"`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.SaveDir != "/home/user/my drawings" {
		t.Errorf("save_dir = %q, want quoted value unwrapped", cfg.SaveDir)
	}
}
