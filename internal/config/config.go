// Package config provides configuration data structures for contrib.
package config

import (
	"fmt"

	"github.com/ywarnier/oss-contrib/internal/logging"
)

// Config represents the contrib settings loaded from .contrib.yaml.
type Config struct {
	Prompt PromptConfig `yaml:"prompt" json:"prompt"`
	Output OutputConfig `yaml:"output" json:"output"`
	Log    LogConfig    `yaml:"log"    json:"log"`
}

// PromptMode selects how questions are asked.
type PromptMode string

const (
	// PromptModeAuto uses the terminal UI when stdin and stdout are terminals.
	PromptModeAuto PromptMode = "auto"
	// PromptModeTUI always uses the terminal UI.
	PromptModeTUI PromptMode = "tui"
	// PromptModePlain always uses line-oriented prompts.
	PromptModePlain PromptMode = "plain"
)

// PromptConfig configures the interactive session.
type PromptConfig struct {
	// Mode selects the session implementation (default: auto).
	Mode PromptMode `yaml:"mode" json:"mode"`
	// DefaultType is the contribution type chosen on an empty answer (default: code).
	DefaultType string `yaml:"default_type" json:"default_type"`
}

// OutputConfig configures how the contributions file is written.
type OutputConfig struct {
	// Indent is the number of spaces per nesting level (default: 4).
	Indent int `yaml:"indent" json:"indent"`
	// InlineLevel is the depth from which collections are written in flow style (default: 4).
	InlineLevel int `yaml:"inline_level" json:"inline_level"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level string `yaml:"level" json:"level"`
	// File is a log file to append to. Empty disables file logging.
	File string `yaml:"file" json:"file"`
	// JSON switches the log format from text to JSON.
	JSON bool `yaml:"json" json:"json"`
}

// Default values.
const (
	DefaultPromptMode  = PromptModeAuto
	DefaultType        = "code"
	DefaultIndent      = 4
	DefaultInlineLevel = 4
	DefaultLogLevel    = "info"
)

// Bounds for output.indent accepted by the YAML encoder.
const (
	MinIndent = 2
	MaxIndent = 9
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Mode:        DefaultPromptMode,
			DefaultType: DefaultType,
		},
		Output: OutputConfig{
			Indent:      DefaultIndent,
			InlineLevel: DefaultInlineLevel,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  "",
			JSON:  false,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Prompt.Mode == "" {
		c.Prompt.Mode = defaults.Prompt.Mode
	}
	if c.Prompt.DefaultType == "" {
		c.Prompt.DefaultType = defaults.Prompt.DefaultType
	}

	if c.Output.Indent == 0 {
		c.Output.Indent = defaults.Output.Indent
	}
	if c.Output.InlineLevel == 0 {
		c.Output.InlineLevel = defaults.Output.InlineLevel
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// LoggingConfig converts the log settings for logging.New. Console output
// is enabled separately by the --verbose flag.
func (c *Config) LoggingConfig() *logging.Config {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	return &logging.Config{
		Level:      level,
		File:       c.Log.File,
		JSONFormat: c.Log.JSON,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Prompt.Mode != "" {
		switch c.Prompt.Mode {
		case PromptModeAuto, PromptModeTUI, PromptModePlain:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "prompt.mode",
				Message: "must be 'auto', 'tui', or 'plain'",
			})
		}
	}

	if c.Output.Indent < MinIndent || c.Output.Indent > MaxIndent {
		errs = append(errs, &ValidationError{
			Field:   "output.indent",
			Message: fmt.Sprintf("must be between %d and %d", MinIndent, MaxIndent),
		})
	}
	if c.Output.InlineLevel < 1 {
		errs = append(errs, &ValidationError{
			Field:   "output.inline_level",
			Message: "must be at least 1",
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
