package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/paintbox/internal/ui"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	for _, name := range c.config.PaletteNames() {
		ui.EnsureSwatch(c.config.Palette[name], name)
	}
	palette := ui.Swatches()
	if len(palette) == 0 {
		fmt.Fprintln(os.Stdout, "no colors available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available colors:")
	for _, sw := range palette {
		fmt.Fprintf(os.Stdout, "  %-10s %s  %s\n", sw.Name, sw.Color.Hex(), sw.Color.CSS())
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
