package workflow

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"lsbkit/internal/imageio"
	"lsbkit/pkg/config"
	"lsbkit/pkg/image"
	"lsbkit/pkg/model"
	"lsbkit/pkg/stegano"
	"lsbkit/test"
)

func encodedCover(t *testing.T, rows, cols int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imageio.Encode(&buf, test.GenerateCover(rows, cols, true), imageio.PNG, png.BestSpeed))
	return &buf
}

func embedAndReveal(t *testing.T, message []byte, cipher *Cipher, framed bool) []byte {
	t.Helper()
	ctx := context.Background()

	embedder, err := NewEmbedder(model.InputFile{Name: "cover.png", Content: encodedCover(t, 24, 24)}, config.EmbedConfig{Framed: framed}, cipher)
	require.NoError(t, err)
	require.NoError(t, embedder.EmbedText(ctx, message))

	var output bytes.Buffer
	require.NoError(t, embedder.WriteEncoded(&output, imageio.PNG))

	stats := embedder.Stats()
	require.Equal(t, 24*24, stats.CapacityBits)
	require.NotZero(t, stats.PayloadBits)

	revealer, err := NewRevealer(model.InputFile{Name: "output.png", Content: &output}, cipher, framed)
	require.NoError(t, err)
	revealed, err := revealer.RevealText(ctx)
	require.NoError(t, err)
	require.Equal(t, len(revealed), revealer.Stats().PayloadBytes)
	return revealed
}

func TestPlainTextRoundTrip(t *testing.T) {
	t.Parallel()

	message := []byte("hello there")
	revealed := embedAndReveal(t, message, nil, false)
	require.True(t, bytes.HasPrefix(revealed, message), "revealed %q", revealed)
}

func TestFramedCipherRoundTrip(t *testing.T) {
	t.Parallel()

	message := []byte("the eagle has landed")
	ciphers := []*Cipher{
		nil,
		{Algorithm: "caesar", Key: []byte{3}},
		{Algorithm: "xor", Key: []byte{0x5a}},
		{Algorithm: "vigenere", Key: []byte("lemon")},
		{Algorithm: "cbc", Key: []byte("abcd")},
		{Algorithm: "otp", Key: test.GenerateRandomBytes(len(message))},
	}

	for _, cipher := range ciphers {
		cipher := cipher
		name := "none"
		if cipher != nil {
			name = cipher.Algorithm
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, message, embedAndReveal(t, message, cipher, true))
		})
	}
}

func TestUnframedCipherRevealsPrefix(t *testing.T) {
	t.Parallel()

	message := []byte("meet at noon")
	revealed := embedAndReveal(t, message, &Cipher{Algorithm: "vigenere", Key: []byte("key")}, false)
	require.Equal(t, message, revealed[:len(message)])
	require.Len(t, revealed, 24*24/8)
}

func TestEmbedStats(t *testing.T) {
	t.Parallel()

	cover := image.ARGBImage(test.GenerateCover(10, 10, true))
	embedder, err := NewEmbedderFromImage(cover, config.EmbedConfig{}, &Cipher{Algorithm: "caesar", Key: []byte{1}})
	require.NoError(t, err)

	require.NoError(t, embedder.EmbedText(context.Background(), bytes.Repeat([]byte{'a'}, 50)))
	stats := embedder.Stats()
	require.Equal(t, 100, stats.CapacityBits)
	require.Equal(t, 100, stats.PayloadBits, "payload is truncated to the capacity")
	require.NotNil(t, embedder.Output())

	// An empty message leaves the cover unchanged
	same, err := NewEmbedderFromImage(cover, config.EmbedConfig{}, nil)
	require.NoError(t, err)
	require.NoError(t, same.EmbedText(context.Background(), nil))
	require.True(t, same.Stats().Lossless)
	require.Zero(t, same.Stats().PSNR)
}

func TestFramedPayloadBits(t *testing.T) {
	t.Parallel()

	embedder, err := NewEmbedderFromImage(test.GenerateCover(16, 16, true), config.EmbedConfig{Framed: true}, nil)
	require.NoError(t, err)
	require.NoError(t, embedder.EmbedText(context.Background(), []byte("framed")))
	require.Equal(t, stegano.FramedBits(len("framed")), embedder.Stats().PayloadBits)
}

func TestStatsPolledWhileEmbedding(t *testing.T) {
	t.Parallel()

	embedder, err := NewEmbedderFromImage(test.GenerateCover(64, 64, true), config.EmbedConfig{}, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				_ = embedder.Stats()
				_ = embedder.Output()
			}
		}
	}()

	for i := 0; i < 10; i++ {
		require.NoError(t, embedder.EmbedText(context.Background(), test.GenerateRandomBytes(64)))
	}
	close(done)
	wg.Wait()

	require.NotNil(t, embedder.Output())
	require.NoError(t, embedder.WriteEncoded(&bytes.Buffer{}, imageio.PNG))
}

func TestEmbedErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := NewEmbedder(model.InputFile{Content: bytes.NewReader([]byte("nope"))}, config.EmbedConfig{}, nil)
	require.ErrorIs(t, err, imageio.ErrInvalidImage)

	_, err = NewEmbedder(model.InputFile{Content: encodedCover(t, 2, 2)}, config.EmbedConfig{}, &Cipher{Algorithm: "enigma"})
	require.ErrorIs(t, err, ErrUnknownCipher)

	embedder, err := NewEmbedder(model.InputFile{Content: encodedCover(t, 4, 4)}, config.EmbedConfig{Framed: true}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, embedder.WriteEncoded(&bytes.Buffer{}, imageio.PNG), ErrNothingEmbedded)
	require.ErrorIs(t, embedder.EmbedText(ctx, []byte("x")), stegano.ErrCoverTooSmall)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, embedder.EmbedText(cancelled, []byte("x")), context.Canceled)
}

func TestImageRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	payload := make(image.ARGBImage, 8)
	for r := range payload {
		payload[r] = make([]uint32, 6)
		for c := range payload[r] {
			if (r+c)%3 == 0 {
				payload[r][c] = image.ARGB(image.Opaque, 250, 250, 250)
			} else {
				payload[r][c] = image.ARGB(image.Opaque, 5, 5, 5)
			}
		}
	}

	embedder, err := NewEmbedder(model.InputFile{Content: encodedCover(t, 12, 12)}, config.EmbedConfig{Threshold: 128}, nil)
	require.NoError(t, err)
	require.NoError(t, embedder.EmbedImage(ctx, payload))
	require.Equal(t, 48, embedder.Stats().PayloadBits)

	var output bytes.Buffer
	require.NoError(t, embedder.WriteEncoded(&output, imageio.BMP))

	revealer, err := NewRevealer(model.InputFile{Content: &output}, nil, false)
	require.NoError(t, err)
	revealed, err := revealer.RevealImage(ctx)
	require.NoError(t, err)
	require.Len(t, revealed, 12)

	white := image.ARGB(image.Opaque, image.MaxValue, image.MaxValue, image.MaxValue)
	black := image.ARGB(image.Opaque, 0, 0, 0)
	for r := range payload {
		for c := range payload[r] {
			expected := black
			if (r+c)%3 == 0 {
				expected = white
			}
			require.Equal(t, expected, revealed[r][c], "pixel %d,%d", r, c)
		}
	}
}

func TestRevealImageNeedsSquare(t *testing.T) {
	t.Parallel()

	revealer, err := NewRevealer(model.InputFile{Content: encodedCover(t, 3, 4)}, nil, false)
	require.NoError(t, err)
	_, err = revealer.RevealImage(context.Background())
	require.ErrorIs(t, err, stegano.ErrNotSquare)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		algorithm string
		key       string
		keyHex    string
		expected  []byte
		wantErr   bool
	}{
		{"CaesarNumber", "caesar", "3", "", []byte{3}, false},
		{"XORNumber", "xor", "255", "", []byte{255}, false},
		{"CaesarOutOfRange", "caesar", "256", "", []byte("256"), false},
		{"CaesarLetter", "caesar", "k", "", []byte("k"), false},
		{"VigenereNumberIsText", "vigenere", "12", "", []byte("12"), false},
		{"Hex", "otp", "", "00ff10", []byte{0, 255, 16}, false},
		{"BadHex", "otp", "", "zz", nil, true},
		{"Both", "cbc", "a", "61", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.algorithm, tt.key, tt.keyHex)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, key)
		})
	}
}
