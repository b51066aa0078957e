package tenterm

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger routes debug output about ignored input to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Terminal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithInsertShift selects how insert mode moves the row before a write.
func WithInsertShift(shift InsertShift) Option {
	return func(t *Terminal) {
		t.shift = shift
	}
}

// InsertShift is the row shift performed by insert mode.
type InsertShift int

const (
	// ShiftPairwise walks the row from column 9 down to the cursor two
	// cells per step, reading each destination from its own index before
	// stepping. Existing cells stay where they are and the write replaces
	// the cell under the cursor.
	ShiftPairwise InsertShift = iota
	// ShiftFull moves every cell from the cursor onward one column right.
	// The cell in column 9 is dropped.
	ShiftFull
)

func (s InsertShift) apply(row *[Columns]string, col int) {
	if s == ShiftFull {
		copy(row[col+1:], row[col:Columns-1])
	}
}

func (s InsertShift) String() string {
	if s == ShiftFull {
		return "full"
	}
	return "pairwise"
}

// ParseInsertShift accepts "pairwise" or "full". Empty means pairwise.
func ParseInsertShift(name string) (InsertShift, error) {
	switch name {
	case "", "pairwise":
		return ShiftPairwise, nil
	case "full":
		return ShiftFull, nil
	}
	return ShiftPairwise, fmt.Errorf("unknown insert shift %q (want pairwise or full)", name)
}

// FrameMode controls whether rendered output is boxed.
type FrameMode string

const (
	FrameAuto   FrameMode = "auto"
	FrameAlways FrameMode = "always"
	FrameNever  FrameMode = "never"
)

// ParseFrameMode accepts auto, always or never. Empty means auto.
func ParseFrameMode(name string) (FrameMode, error) {
	switch FrameMode(name) {
	case "", FrameAuto:
		return FrameAuto, nil
	case FrameAlways, FrameNever:
		return FrameMode(name), nil
	}
	return FrameAuto, fmt.Errorf("unknown frame mode %q (want auto, always or never)", name)
}

// Config is the on-disk configuration for the file_terminal example.
type Config struct {
	InsertShift InsertShift
	Frame       FrameMode
}

type rawConfig struct {
	InsertShift string `yaml:"insert_shift"`
	Frame       string `yaml:"frame"`
}

// DefaultConfig matches the behaviour of a terminal built with no options.
func DefaultConfig() Config {
	return Config{InsertShift: ShiftPairwise, Frame: FrameAuto}
}

// ParseConfig decodes YAML configuration. Missing keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	var err error
	if cfg.InsertShift, err = ParseInsertShift(raw.InsertShift); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Frame, err = ParseFrameMode(raw.Frame); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Options turns the config into terminal options.
func (c Config) Options() []Option {
	return []Option{WithInsertShift(c.InsertShift)}
}
