/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */

// Package theme holds per-deck presentation styling: fonts, sizes and colors
// applied when slides are rendered or exported. A deck carries an optional
// theme.yaml at its root; absent values fall back to the built-in look.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeFileName is the per-deck theme file at the deck root.
const ThemeFileName = "theme.yaml"

// RGB is an opaque color channel triple.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Theme configures slide rendering. Font must be one of the PDF base
// families (Helvetica, Times, Courier) so exports need no font embedding.
type Theme struct {
	Font         string  `yaml:"font"`
	TitleSize    float64 `yaml:"title_size"`
	SubtitleSize float64 `yaml:"subtitle_size"`
	BodySize     float64 `yaml:"body_size"`
	StepSize     float64 `yaml:"step_size"`
	TextColor    *RGB    `yaml:"text_color"`
	AccentColor  *RGB    `yaml:"accent_color"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Font:         "Helvetica",
		TitleSize:    36,
		SubtitleSize: 20,
		BodySize:     16,
		StepSize:     14,
		TextColor:    &RGB{R: 20, G: 20, B: 20},
		AccentColor:  &RGB{R: 96, G: 96, B: 96},
	}
}

// Load reads the deck's theme.yaml, merged over the defaults. A missing file
// is not an error: the defaults apply.
func Load(deckRoot string) (Theme, error) {
	th := Default()
	path := filepath.Join(deckRoot, ThemeFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return th, nil
		}
		return th, fmt.Errorf("read theme: %w", err)
	}
	var file Theme
	if err := yaml.Unmarshal(data, &file); err != nil {
		return th, fmt.Errorf("parse theme: %w", err)
	}
	mergeInto(&th, file)
	return th, nil
}

// Save writes the theme to the deck's theme.yaml.
func Save(deckRoot string, th Theme) error {
	data, err := yaml.Marshal(th)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	path := filepath.Join(deckRoot, ThemeFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

func mergeInto(dst *Theme, src Theme) {
	if src.Font != "" {
		dst.Font = src.Font
	}
	if src.TitleSize != 0 {
		dst.TitleSize = src.TitleSize
	}
	if src.SubtitleSize != 0 {
		dst.SubtitleSize = src.SubtitleSize
	}
	if src.BodySize != 0 {
		dst.BodySize = src.BodySize
	}
	if src.StepSize != 0 {
		dst.StepSize = src.StepSize
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.AccentColor != nil {
		dst.AccentColor = src.AccentColor
	}
}
