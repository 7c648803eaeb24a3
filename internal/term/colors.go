// Package term draws the bookshop screens on a text console.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences used by the console.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"

	clearScreen = "\033[H\033[2J"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette colorizes text when enabled and passes it through otherwise.
type Palette struct {
	enabled bool
}

func NewPalette(enabled bool) Palette { return Palette{enabled: enabled} }

func (p Palette) Enabled() bool { return p.enabled }

func (p Palette) Colorize(text, color string) string {
	if !p.enabled {
		return text
	}
	return color + text + ColorReset
}

func (p Palette) Red(text string) string    { return p.Colorize(text, ColorRed) }
func (p Palette) Green(text string) string  { return p.Colorize(text, ColorGreen) }
func (p Palette) Yellow(text string) string { return p.Colorize(text, ColorYellow) }
func (p Palette) Blue(text string) string   { return p.Colorize(text, ColorBlue) }
func (p Palette) Cyan(text string) string   { return p.Colorize(text, ColorCyan) }

// ColorEnabled resolves a colour mode against the output file. "auto"
// enables colours on terminals that are not TERM=dumb.
func ColorEnabled(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
