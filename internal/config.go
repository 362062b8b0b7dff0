package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Icon sets.
const (
	IconsNerd  = "nerd"
	IconsASCII = "ascii"
)

// Duration is a time.Duration that unmarshals from YAML duration strings
// such as "100ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	Data DataConfig        `yaml:"data"`
	UI   UIConfig          `yaml:"ui"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Data.Validate(); err != nil {
		return err
	}
	return c.UI.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// Stdout belongs to the frame renderer while the session is active, so logs
// go to LogFile when set and are discarded otherwise.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// DataConfig holds the path to the note database file.
type DataConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the data configuration.
func (c *DataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// UIConfig holds terminal interface tuning.
//
// PollInterval bounds how long the run loop waits for a key before
// re-rendering. EscapeTimeout is the wait that separates a bare Escape press
// from the start of a multi-byte sequence; SequenceTimeout is the inter-byte
// wait while accumulating one.
type UIConfig struct {
	PollInterval    Duration `yaml:"poll_interval"`
	EscapeTimeout   Duration `yaml:"escape_timeout"`
	SequenceTimeout Duration `yaml:"sequence_timeout"`
	Icons           string   `yaml:"icons"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Icons, validation.Required, validation.In(IconsNerd, IconsASCII)),
	); err != nil {
		return err
	}
	for name, d := range map[string]Duration{
		"poll_interval":    c.PollInterval,
		"escape_timeout":   c.EscapeTimeout,
		"sequence_timeout": c.SequenceTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("ui: %s must be positive", name)
		}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Data: DataConfig{
			Path: "data/notes.db",
		},
		UI: UIConfig{
			PollInterval:    Duration(100 * time.Millisecond),
			EscapeTimeout:   Duration(50 * time.Millisecond),
			SequenceTimeout: Duration(10 * time.Millisecond),
			Icons:           IconsNerd,
		},
	}
}
