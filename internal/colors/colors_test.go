package colors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestInit(t *testing.T) {
	orig := color.NoColor
	defer func() { color.NoColor = orig }()

	on, off := true, false
	tests := []struct {
		name  string
		start bool
		force *bool
		want  bool
	}{
		{"force on", true, &on, true},
		{"force off", false, &off, false},
		{"nil keeps enabled", false, nil, true},
		{"nil keeps disabled", true, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = tt.start
			Init(tt.force)
			if got := Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyles(t *testing.T) {
	orig := color.NoColor
	defer func() { color.NoColor = orig }()

	styles := map[string]func() *color.Color{
		"Bold":       Bold,
		"Faint":      Faint,
		"HiMagenta":  HiMagenta,
		"BoldHiBlue": BoldHiBlue,
	}
	for name, fn := range styles {
		t.Run(name, func(t *testing.T) {
			color.NoColor = false
			if got := fn().Sprint("x"); !strings.Contains(got, "\x1b[") {
				t.Errorf("%s().Sprint() = %q, want ANSI codes", name, got)
			}
			color.NoColor = true
			if got := fn().Sprint("x"); got != "x" {
				t.Errorf("%s().Sprint() = %q, want plain text", name, got)
			}
		})
	}
}
