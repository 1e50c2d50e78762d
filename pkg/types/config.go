// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format selects the log encoding: console or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// WatermarkConfig controls how watermark text is stamped.
type WatermarkConfig struct {
	// Font is a PDF core font name (e.g. "Helvetica").
	Font string `json:"font" yaml:"font" mapstructure:"font"`

	// FontSize is the text size in points (default 48).
	FontSize int `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// Opacity is between 0 (invisible) and 1 (opaque); default 0.3.
	Opacity float64 `json:"opacity" yaml:"opacity" mapstructure:"opacity"`

	// Rotation is the text angle in degrees counter-clockwise (default 45).
	Rotation float64 `json:"rotation" yaml:"rotation" mapstructure:"rotation"`
}

// CreateConfig controls sample document generation.
type CreateConfig struct {
	// PageSize is an fpdf page size name: Letter, Legal, A4, A5, A3.
	PageSize string `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// Title is the heading drawn on the first page and stored as document title.
	Title string `json:"title" yaml:"title" mapstructure:"title"`
}

// Config groups all pdftool settings.
type Config struct {
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
	Watermark WatermarkConfig `json:"watermark" yaml:"watermark" mapstructure:"watermark"`
	Create    CreateConfig    `json:"create" yaml:"create" mapstructure:"create"`
}

// DefaultConfig returns the settings used when no config file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Watermark: WatermarkConfig{
			Font:     "Helvetica",
			FontSize: 48,
			Opacity:  0.3,
			Rotation: 45,
		},
		Create: CreateConfig{
			PageSize: "Letter",
			Title:    "Sample PDF Document",
		},
	}
}
