// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/textimage/pkg/textimage"
)

// Config represents a text image job loaded from YAML.
type Config struct {
	// Output
	FileName    string `yaml:"file_name"`
	OutputImage bool   `yaml:"output_image"`

	// Canvas and layout
	Width              int `yaml:"width"`
	HorizontalPosition int `yaml:"horizontal_position"`
	VerticalPosition   int `yaml:"vertical_position"`
	LineHeight         int `yaml:"line_height"`

	// Style
	BackgroundColor string `yaml:"background_color"`
	FontColor       string `yaml:"font_color"`
	FontSize        int    `yaml:"font_size"`
	Angle           int    `yaml:"angle"`
	Font            string `yaml:"font"`
	UseLocalNumber  bool   `yaml:"use_local_number"`

	// Content
	Lines []string `yaml:"lines"`
}

// Defaults returns a Config with the builder's default values.
func Defaults() Config {
	o := textimage.DefaultOptions()
	return Config{
		FileName:           o.FileName,
		OutputImage:        o.OutputImage,
		Width:              o.Width,
		HorizontalPosition: o.HorizontalPosition,
		VerticalPosition:   o.VerticalPosition,
		LineHeight:         o.LineHeight,
		BackgroundColor:    o.BackgroundColor,
		FontColor:          o.FontColor,
		FontSize:           o.FontSize,
		Angle:              o.Angle,
		Font:               o.Font,
		UseLocalNumber:     o.UseLocalNumber,
	}
}

// Load parses YAML data over the defaults. Keys absent from data keep
// their default values.
func Load(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Load(data)
}

// Options returns the configuration keyed by builder option names, suitable
// for textimage.Builder.WithOptions.
func (c Config) Options() map[string]any {
	return map[string]any{
		textimage.OptFileName:           c.FileName,
		textimage.OptOutputImage:        c.OutputImage,
		textimage.OptWidth:              c.Width,
		textimage.OptHorizontalPosition: c.HorizontalPosition,
		textimage.OptVerticalPosition:   c.VerticalPosition,
		textimage.OptLineHeight:         c.LineHeight,
		textimage.OptBackgroundColor:    c.BackgroundColor,
		textimage.OptFontColor:          c.FontColor,
		textimage.OptFontSize:           c.FontSize,
		textimage.OptAngle:              c.Angle,
		textimage.OptFont:               c.Font,
		textimage.OptUseLocalNumber:     c.UseLocalNumber,
		textimage.OptLines:              c.Lines,
	}
}
