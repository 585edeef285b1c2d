package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/paintbox/internal/paint"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch currentSection {
		case "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		case "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case "palette":
			c, err := paint.ParseHex(value)
			if err != nil {
				return nil, fmt.Errorf("error in section [palette]: invalid color for swatch %s: %w", key, err)
			}
			cfg.Palette[key] = c
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid width %q", value)
		}
		cfg.Width = n
	case "height":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid height %q", value)
		}
		cfg.Height = n
	case "tool":
		switch strings.ToLower(value) {
		case "brush", "rect":
			cfg.Tool = strings.ToLower(value)
		default:
			return fmt.Errorf("unknown tool %q", value)
		}
	case "color":
		if _, err := paint.ParseHex(value); err != nil {
			return fmt.Errorf("invalid color %q: %w", value, err)
		}
		cfg.PrimaryColor = value
	case "secondary_color":
		if _, err := paint.ParseHex(value); err != nil {
			return fmt.Errorf("invalid secondary_color %q: %w", value, err)
		}
		cfg.SecondaryColor = value
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
