package config

import (
	"time"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

// Config represents the full gradient configuration document.
type Config struct {
	Gradient  Gradient  `yaml:"gradient"`
	Feedback  Feedback  `yaml:"feedback"`
	Clipboard Clipboard `yaml:"clipboard"`
	Log       Log       `yaml:"log"`
}

// Gradient holds the settings the UI starts from. Empty colours are generated.
type Gradient struct {
	Angle     int    `yaml:"angle" validate:"min=0,max=360"`
	ColourOne string `yaml:"colour_one,omitempty" validate:"omitempty,hex_colour"`
	ColourTwo string `yaml:"colour_two,omitempty" validate:"omitempty,hex_colour"`
}

// Feedback configures the "copied" status line.
type Feedback struct {
	Duration time.Duration `yaml:"duration" validate:"gt=0"`
	Policy   string        `yaml:"policy" validate:"oneof=independent restart"`
}

// Clipboard selects where copied declarations are written.
type Clipboard struct {
	Backend string `yaml:"backend" validate:"oneof=auto osc52 system command none"`
}

// Log configures the file logger used while the TUI owns the terminal.
type Log struct {
	Level  string `yaml:"level" validate:"log_level"`
	Format string `yaml:"format" validate:"oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Gradient: Gradient{
			Angle: gradient.DefaultAngle,
		},
		Feedback: Feedback{
			Duration: gradient.DefaultFeedbackDuration,
			Policy:   string(gradient.FeedbackIndependent),
		},
		Clipboard: Clipboard{
			Backend: "auto",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// FeedbackPolicy returns the configured overlap policy.
func (c *Config) FeedbackPolicy() gradient.FeedbackPolicy {
	policy, err := gradient.ParseFeedbackPolicy(c.Feedback.Policy)
	if err != nil {
		return gradient.FeedbackIndependent
	}
	return policy
}

// InitialSettings builds the starting gradient, generating any colour the
// configuration leaves empty.
func (c *Config) InitialSettings(gen gradient.ColourGenerator) gradient.Settings {
	settings := gradient.New(gen).WithAngle(c.Gradient.Angle)
	if c.Gradient.ColourOne != "" {
		settings = settings.WithColour(gradient.SlotOne, gradient.Colour(c.Gradient.ColourOne))
	}
	if c.Gradient.ColourTwo != "" {
		settings = settings.WithColour(gradient.SlotTwo, gradient.Colour(c.Gradient.ColourTwo))
	}
	return settings
}
