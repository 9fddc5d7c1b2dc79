package server

import (
	"github.com/dustin/go-humanize"

	"lsbkit/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	SetupHuman               string `json:"setup_human"`
	DataEmbeddingHuman       string `json:"data_embedding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	CapacityHuman            string `json:"capacity_human"`
}

type humanizedRevealStats struct {
	model.RevealStats
	DataRevealingHuman string `json:"data_revealing_human"`
	PayloadHuman       string `json:"payload_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:               embedStats,
		SetupHuman:               embedStats.Setup.String(),
		DataEmbeddingHuman:       embedStats.DataEmbedding.String(),
		OutputImageEncodingHuman: embedStats.OutputImageEncoding.String(),
		CapacityHuman:            humanize.Bytes(uint64(embedStats.CapacityBits / 8)),
	}
}

func toHumanizedRevealStats(revealStats model.RevealStats) humanizedRevealStats {
	return humanizedRevealStats{
		RevealStats:        revealStats,
		DataRevealingHuman: revealStats.DataRevealing.String(),
		PayloadHuman:       humanize.Bytes(uint64(revealStats.PayloadBytes)),
	}
}
