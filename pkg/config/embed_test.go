package config

import (
	"image/png"
	"testing"
)

func TestPopulateUnsetConfigVars(t *testing.T) {
	tests := []struct {
		name     string
		in       EmbedConfig
		expected EmbedConfig
	}{
		{"Zero", EmbedConfig{}, EmbedConfig{Threshold: 0, PngCompressionLevel: png.DefaultCompression}},
		{"NegativeThreshold", EmbedConfig{Threshold: -1}, EmbedConfig{Threshold: DefaultThreshold}},
		{"ThresholdTooLarge", EmbedConfig{Threshold: 300}, EmbedConfig{Threshold: DefaultThreshold}},
		{"Kept", EmbedConfig{Threshold: 42, PngCompressionLevel: png.BestSpeed, Framed: true},
			EmbedConfig{Threshold: 42, PngCompressionLevel: png.BestSpeed, Framed: true}},
		{"UnknownCompression", EmbedConfig{Threshold: 10, PngCompressionLevel: 7},
			EmbedConfig{Threshold: 10, PngCompressionLevel: png.DefaultCompression}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.PopulateUnsetConfigVars()
			if c != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, c)
			}
		})
	}
}
