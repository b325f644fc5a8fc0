package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var _ pflag.Value = (*ColorMode)(nil)

func (c *ColorMode) String() string { return string(*c) }

func (c *ColorMode) Set(s string) error {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		*c = ColorMode(s)
		return nil
	}
	return fmt.Errorf("must be one of auto, always, never")
}

func (c *ColorMode) Type() string { return "when" }

func (c *ColorMode) UnmarshalText(b []byte) error {
	if err := c.Set(string(b)); err != nil {
		return fmt.Errorf("color %q: %w", b, err)
	}
	return nil
}

// Enabled resolves the mode for output written to f. Auto enables color
// only on a terminal, and never when NO_COLOR is set.
func (c ColorMode) Enabled(f *os.File) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return f != nil && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}
