// Package colors provides centralized color output with TTY-aware defaults.
//
// Colors are automatically disabled when stdout is not a terminal (piped or
// redirected to a file). This behavior is provided by the underlying fatih/color
// library and respected by default. Use Init() to override.
package colors

import "github.com/fatih/color"

// Init allows overriding the auto-detected color setting.
//   - forceColor == nil: keep auto-detected value (recommended default)
//   - forceColor == true: force colors on
//   - forceColor == false: force colors off
func Init(forceColor *bool) {
	if forceColor != nil {
		color.NoColor = !*forceColor
	}
}

// Enabled returns true if colors are currently enabled.
func Enabled() bool {
	return !color.NoColor
}

func Bold() *color.Color       { return color.New(color.Bold) }
func Faint() *color.Color      { return color.New(color.Faint) }
func HiMagenta() *color.Color  { return color.New(color.FgHiMagenta) }
func BoldHiBlue() *color.Color { return color.New(color.Bold, color.FgHiBlue) }
