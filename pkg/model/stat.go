package model

import (
	"time"
)

type EmbedStats struct {
	Setup               time.Duration `json:"setup"`
	Encryption          time.Duration `json:"encryption"`
	DataEmbedding       time.Duration `json:"data_embedding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	CapacityBits        int           `json:"capacity_bits"`
	PayloadBits         int           `json:"payload_bits"`

	// PSNR in decibels between cover and output. Lossless is set instead when both are identical, as JSON has no
	// representation for +Inf
	PSNR     float64 `json:"psnr"`
	Lossless bool    `json:"lossless"`
}

type RevealStats struct {
	InputImageDecoding time.Duration `json:"input_image_decoding"`
	DataRevealing      time.Duration `json:"data_revealing"`
	Decryption         time.Duration `json:"decryption"`
	PayloadBytes       int           `json:"payload_bytes"`
}
