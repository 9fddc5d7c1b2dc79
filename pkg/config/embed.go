package config

import "image/png"

const (
	DefaultThreshold = 128
	MaxThreshold     = 256
)

type EmbedConfig struct {
	// Gray levels at or above Threshold become white when a payload image is binarised
	Threshold           int
	PngCompressionLevel png.CompressionLevel
	// Framed prefixes the payload with its length so that it can be revealed exactly
	Framed              bool
}

func (c *EmbedConfig) PopulateUnsetConfigVars() {
	if c.Threshold < 0 || c.Threshold > MaxThreshold {
		c.Threshold = DefaultThreshold
	}
	if c.PngCompressionLevel > png.DefaultCompression || c.PngCompressionLevel < png.BestCompression {
		c.PngCompressionLevel = png.DefaultCompression
	}
}
