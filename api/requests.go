// Package api holds the bodies exchanged with the HTTP server. Byte slices travel base64 encoded in JSON.
package api

import "lsbkit/pkg/model"

type HealthResponse struct {
	Status           string `json:"status"`
	CipherOperations int    `json:"cipher_operations"`
}

type CipherOperation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type CipherOperationsResponse struct {
	Operations []CipherOperation `json:"operations"`
}

type CipherRequest struct {
	Input []byte `json:"input"`
	Key   []byte `json:"key"`
}

type CipherResponse struct {
	Output []byte `json:"output"`
}

// Cipher scrambles the message before it is embedded, and unscrambles it after it is revealed
type Cipher struct {
	Algorithm string `json:"algorithm" example:"vigenere"`
	Key       []byte `json:"key"`
}

type EmbedTextRequest struct {
	Cover   []byte  `json:"cover"`
	Message []byte  `json:"message"`
	Cipher  *Cipher `json:"cipher,omitempty"`
	Framed  bool    `json:"framed"`
	// Format of the returned image, png or bmp. Defaults to png
	Format  string  `json:"format,omitempty" example:"png"`
}

type EmbedTextResponse struct {
	Image []byte           `json:"image"`
	Stats model.EmbedStats `json:"stats"`
}

type RevealTextRequest struct {
	Image  []byte  `json:"image"`
	Cipher *Cipher `json:"cipher,omitempty"`
	Framed bool    `json:"framed"`
}

type RevealTextResponse struct {
	Message []byte            `json:"message"`
	Stats   model.RevealStats `json:"stats"`
}

type EmbedImageRequest struct {
	Cover     []byte `json:"cover"`
	Payload   []byte `json:"payload"`
	// Gray level at or above which payload pixels are white. Defaults to 128
	Threshold *int   `json:"threshold,omitempty" example:"128"`
	Format    string `json:"format,omitempty" example:"png"`
}

type EmbedImageResponse struct {
	Image []byte           `json:"image"`
	Stats model.EmbedStats `json:"stats"`
}

type RevealImageRequest struct {
	Image  []byte `json:"image"`
	Format string `json:"format,omitempty" example:"png"`
}

type RevealImageResponse struct {
	Image []byte            `json:"image"`
	Stats model.RevealStats `json:"stats"`
}
