// Package config loads and serializes paintbox settings in RC format.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/paintbox/internal/paint"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Width          int
	Height         int
	Tool           string
	PrimaryColor   string
	SecondaryColor string
	SaveDir        string
	Notify         Notify
	Palette        map[string]paint.Color
}

// New creates a new Config with defaults. Zero width, height, and empty
// colors mean "use the built-in defaults" so the file only records what the
// user changed.
func New() *Config {
	return &Config{
		Palette: make(map[string]paint.Color),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Width > 0 {
		fmt.Fprintf(&sb, "width = %d\n", c.Width)
	}
	if c.Height > 0 {
		fmt.Fprintf(&sb, "height = %d\n", c.Height)
	}
	if c.Tool != "" {
		fmt.Fprintf(&sb, "tool = %s\n", c.Tool)
	}
	if c.PrimaryColor != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.PrimaryColor)
	}
	if c.SecondaryColor != "" {
		fmt.Fprintf(&sb, "secondary_color = %s\n", c.SecondaryColor)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	if len(c.Palette) > 0 {
		sb.WriteString("[palette]\n")
		for _, name := range c.PaletteNames() {
			fmt.Fprintf(&sb, "%s = %s\n", name, c.Palette[name].Hex())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// PaletteNames returns the swatch names in sorted order for deterministic
// output.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.Palette))
	for name := range c.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
