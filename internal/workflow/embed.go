package workflow

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"time"

	"lsbkit/internal/bits"
	"lsbkit/internal/imageio"
	"lsbkit/pkg/config"
	"lsbkit/pkg/image"
	"lsbkit/pkg/model"
	"lsbkit/pkg/stegano"
	"lsbkit/pkg/text"
)

var ErrNothingEmbedded = errors.New("no payload has been embedded yet")

// Embedder hides a payload in a cover image. Stats and Output are safe to call from another goroutine while
// embedding runs
type Embedder struct {
	cover  image.ARGBImage
	config config.EmbedConfig
	cipher *Cipher

	// mu guards output and stats
	mu     sync.RWMutex
	output image.ARGBImage
	stats  model.EmbedStats
}

// NewEmbedder decodes the cover image. A nil cipher embeds the payload as is
func NewEmbedder(cover model.InputFile, embedConfig config.EmbedConfig, cipher *Cipher) (*Embedder, error) {
	embedConfig.PopulateUnsetConfigVars()
	if cipher != nil {
		if err := cipher.Validate(); err != nil {
			return nil, err
		}
	}

	e := &Embedder{config: embedConfig, cipher: cipher}

	setupStart := time.Now()
	img, _, err := imageio.Decode(cover.Content)
	if err != nil {
		return nil, err
	}
	e.cover = img

	e.mu.Lock()
	e.stats.Setup = time.Since(setupStart)
	e.stats.CapacityBits = stegano.Capacity(img)
	e.mu.Unlock()
	return e, nil
}

// NewEmbedderFromImage skips decoding, for covers that are already in memory
func NewEmbedderFromImage(cover image.ARGBImage, embedConfig config.EmbedConfig, cipher *Cipher) (*Embedder, error) {
	embedConfig.PopulateUnsetConfigVars()
	if cipher != nil {
		if err := cipher.Validate(); err != nil {
			return nil, err
		}
	}
	e := &Embedder{cover: cover, config: embedConfig, cipher: cipher}
	e.stats.CapacityBits = stegano.Capacity(cover)
	return e, nil
}

func (e *Embedder) Stats() model.EmbedStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// Output returns the cover with the payload embedded, or nil before any Embed call succeeded
func (e *Embedder) Output() image.ARGBImage {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.output
}

// EmbedText encrypts message when a cipher was configured, then hides it. Encrypted or framed messages are embedded
// byte for byte, plain unframed ones go through the text codec
func (e *Embedder) EmbedText(ctx context.Context, message []byte) error {
	payload := message
	if e.cipher != nil {
		encryptionStart := time.Now()
		encrypted, err := e.cipher.Encrypt(ctx, message)
		if err != nil {
			return err
		}
		payload = encrypted
		e.setStat(func(s *model.EmbedStats) { s.Encryption = time.Since(encryptionStart) })
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	embeddingStart := time.Now()
	var (
		output      image.ARGBImage
		payloadBits int
		err         error
	)
	switch {
	case e.config.Framed:
		output, err = stegano.EmbedFramed(e.cover, payload)
		payloadBits = stegano.FramedBits(len(payload))
	case e.cipher != nil:
		output, err = stegano.EmbedBytes(e.cover, payload)
		payloadBits = len(payload) * bits.BitsInByte
	default:
		output, err = stegano.EmbedText(e.cover, payload)
		payloadBits = len(text.ToBytes(text.ToString(payload))) * bits.BitsInByte
	}
	if err != nil {
		return err
	}

	return e.finishEmbedding(output, min(payloadBits, stegano.Capacity(e.cover)), embeddingStart)
}

// EmbedImage hides the binarised payload in the top left corner of the cover
func (e *Embedder) EmbedImage(ctx context.Context, payload image.ARGBImage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	embeddingStart := time.Now()
	output, err := stegano.EmbedARGB(e.cover, payload, e.config.Threshold)
	if err != nil {
		return err
	}
	rows, cols, err := image.Dimensions(payload)
	if err != nil {
		return err
	}
	return e.finishEmbedding(output, rows*cols, embeddingStart)
}

func (e *Embedder) finishEmbedding(output image.ARGBImage, payloadBits int, embeddingStart time.Time) error {
	embedding := time.Since(embeddingStart)

	psnr, err := image.PSNR(e.cover, output)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.output = output
	e.stats.DataEmbedding = embedding
	e.stats.PayloadBits = payloadBits
	// JSON has no representation for +Inf
	e.stats.Lossless = math.IsInf(psnr, 1)
	if e.stats.Lossless {
		e.stats.PSNR = 0
	} else {
		e.stats.PSNR = psnr
	}
	return nil
}

// WriteEncoded encodes the output image into w
func (e *Embedder) WriteEncoded(w io.Writer, format imageio.Format) error {
	output := e.Output()
	if output == nil {
		return ErrNothingEmbedded
	}

	encodingStart := time.Now()
	if err := imageio.Encode(w, output, format, e.config.PngCompressionLevel); err != nil {
		return err
	}
	e.setStat(func(s *model.EmbedStats) { s.OutputImageEncoding = time.Since(encodingStart) })
	return nil
}

func (e *Embedder) setStat(update func(s *model.EmbedStats)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	update(&e.stats)
}
