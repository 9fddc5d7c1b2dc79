package workflow

import (
	"context"
	"sync"
	"time"

	"lsbkit/internal/imageio"
	"lsbkit/pkg/image"
	"lsbkit/pkg/model"
	"lsbkit/pkg/stegano"
)

// Revealer extracts a payload hidden by an Embedder. It must be configured with the same cipher and framing
type Revealer struct {
	img    image.ARGBImage
	cipher *Cipher
	framed bool

	mu    sync.RWMutex
	stats model.RevealStats
}

func NewRevealer(input model.InputFile, cipher *Cipher, framed bool) (*Revealer, error) {
	if cipher != nil {
		if err := cipher.Validate(); err != nil {
			return nil, err
		}
	}

	decodingStart := time.Now()
	img, _, err := imageio.Decode(input.Content)
	if err != nil {
		return nil, err
	}

	r := &Revealer{img: img, cipher: cipher, framed: framed}
	r.stats.InputImageDecoding = time.Since(decodingStart)
	return r, nil
}

func (r *Revealer) Stats() model.RevealStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// RevealText extracts the hidden message and decrypts it. Without framing the whole LSB plane is returned, so the
// message is followed by whatever the cover held in the remaining pixels
func (r *Revealer) RevealText(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	revealingStart := time.Now()
	var (
		payload []byte
		err     error
	)
	switch {
	case r.framed:
		payload, err = stegano.RevealFramed(r.img)
	case r.cipher != nil:
		payload, err = stegano.RevealBytes(r.img)
	default:
		payload, err = stegano.RevealText(r.img)
	}
	if err != nil {
		return nil, err
	}
	r.setStat(func(s *model.RevealStats) { s.DataRevealing = time.Since(revealingStart) })

	if r.cipher != nil {
		decryptionStart := time.Now()
		payload, err = r.cipher.Decrypt(ctx, payload)
		if err != nil {
			return nil, err
		}
		r.setStat(func(s *model.RevealStats) { s.Decryption = time.Since(decryptionStart) })
	}

	r.setStat(func(s *model.RevealStats) { s.PayloadBytes = len(payload) })
	return payload, nil
}

// RevealImage reads the LSB plane of a square image back as a black and white picture
func (r *Revealer) RevealImage(ctx context.Context) (image.ARGBImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	revealingStart := time.Now()
	revealed, err := stegano.RevealBW(r.img)
	if err != nil {
		return nil, err
	}
	output, err := image.FromBinary(revealed)
	if err != nil {
		return nil, err
	}
	r.setStat(func(s *model.RevealStats) {
		s.DataRevealing = time.Since(revealingStart)
		s.PayloadBytes = 0
	})
	return output, nil
}

func (r *Revealer) setStat(update func(s *model.RevealStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	update(&r.stats)
}
