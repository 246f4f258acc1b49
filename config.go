package simplex

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	FormatPNG  = "png"
	FormatText = "text"
	FormatCSV  = "csv"
)

// Config describes a rectangular sampling of a noise field and where to write it.
type Config struct {
	Width        int
	Height       int
	Scale        float64
	OffsetX      float64
	OffsetY      float64
	Seed         uint64
	Seeded       bool
	SeedFile     string
	Output       string
	Format       string
	ErrorReports bool
}

type ConfigOption func(c *Config) error

// NewConfig applies options over the defaults.  All option errors are collected and
// returned together.
func NewConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Width:        256,
		Height:       256,
		Scale:        0.05,
		Format:       FormatPNG,
		ErrorReports: true,
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}
	if c.Seeded && c.SeedFile != "" {
		errors = append(errors, fmt.Errorf("seed and seed-file can not be used together"))
	}
	if c.Format == FormatPNG && (c.Output == "" || c.Output == "-") && isTerminal() {
		errors = append(errors, fmt.Errorf("refusing to write png to a terminal, use --output or --format text"))
	}

	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

// Size sets the sample grid as WxH
func Size(size string) ConfigOption {
	return func(c *Config) error {
		parts := strings.SplitN(size, "x", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid size %q, expected WxH", size)
		}
		w, err := strconv.Atoi(parts[0])
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q", parts[0])
		}
		h, err := strconv.Atoi(parts[1])
		if err != nil || h <= 0 {
			return fmt.Errorf("invalid height %q", parts[1])
		}
		c.Width = w
		c.Height = h
		return nil
	}
}

// Scale sets the distance in noise space between neighboring samples
func Scale(scale string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseFloat(scale, 64)
		if err != nil || s <= 0 {
			return fmt.Errorf("could not convert scale to a positive number")
		}
		c.Scale = s
		return nil
	}
}

// Offset sets the noise space coordinate of the top left sample as x,y
func Offset(offset string) ConfigOption {
	return func(c *Config) error {
		parts := strings.SplitN(offset, ",", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid offset %q, expected x,y", offset)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid x offset %q", parts[0])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return fmt.Errorf("invalid y offset %q", parts[1])
		}
		c.OffsetX = x
		c.OffsetY = y
		return nil
	}
}

func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to an unsigned integer")
		}
		c.Seed = s
		c.Seeded = true
		return nil
	}
}

// SeedFile reads the 256 table bytes from a file instead of a random source
func SeedFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return fmt.Errorf("seed-file requires a path")
		}
		c.SeedFile = path
		return nil
	}
}

func Output(path string) ConfigOption {
	return func(c *Config) error {
		c.Output = path
		return nil
	}
}

func Format(format string) ConfigOption {
	return func(c *Config) error {
		switch format {
		case FormatPNG, FormatText, FormatCSV:
			c.Format = format
			return nil
		default:
			return fmt.Errorf("unknown format %s, use one of png, text, csv", format)
		}
	}
}

func ErrorReports() ConfigOption {
	return func(c *Config) error {
		c.ErrorReports = true
		return nil
	}
}

func NoErrorReports() ConfigOption {
	return func(c *Config) error {
		c.ErrorReports = false
		return nil
	}
}

// isTerminal reports whether stdout is a character device
var isTerminal = func() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
