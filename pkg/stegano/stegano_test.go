package stegano

import (
	"errors"
	"fmt"
	"testing"

	"lsbkit/internal/bits"
	"lsbkit/pkg/image"
	"lsbkit/test"
)

const testCoverSize = 64

func TestEmbedBitsScenario(t *testing.T) {
	cover := image.ARGBImage{{0, 0}, {0, 0}}
	embedded, err := EmbedBits(cover, []bool{true, false, true})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	revealed, err := RevealBits(embedded)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	expected := []bool{true, false, true, false}
	for i := range expected {
		if revealed[i] != expected[i] {
			t.Errorf("Bit %d expected %t, got %t", i, expected[i], revealed[i])
		}
	}
	if cover[0][0] != 0 {
		t.Errorf("Cover was modified in place")
	}
}

func TestEmbedRevealBits(t *testing.T) {
	for _, opaque := range []bool{true, false} {
		for _, payloadLength := range []int{0, 1, 7, testCoverSize * 3, testCoverSize*testCoverSize - 1, testCoverSize * testCoverSize} {
			opaque, payloadLength := opaque, payloadLength
			t.Run(fmt.Sprintf("opaque=%t/bits=%d", opaque, payloadLength), func(t *testing.T) {
				t.Parallel()
				cover := test.GenerateCover(testCoverSize, testCoverSize, opaque)
				payload := test.GenerateRandomBits(payloadLength)
				originalLSBs, _ := RevealBits(cover)

				embedded, err := EmbedBits(cover, payload)
				if err != nil {
					t.Fatalf("Unexpected error: %s", err)
				}
				revealed, err := RevealBits(embedded)
				if err != nil {
					t.Fatalf("Unexpected error: %s", err)
				}
				if len(revealed) != testCoverSize*testCoverSize {
					t.Fatalf("Expected %d bits, got %d", testCoverSize*testCoverSize, len(revealed))
				}
				for k := range revealed {
					expected := originalLSBs[k]
					if k < payloadLength {
						expected = payload[k]
					}
					if revealed[k] != expected {
						t.Fatalf("Bit %d expected %t, got %t", k, expected, revealed[k])
					}
				}
				checkOnlyLSBsChanged(t, cover, embedded)
			})
		}
	}
}

func TestEmbedBitsTruncatesPayload(t *testing.T) {
	cover := test.GenerateCover(3, 2, true)
	payload := test.GenerateRandomBits(10)
	embedded, err := EmbedBits(cover, payload)
	if err != nil {
		t.Fatalf("Payload longer than capacity should be truncated, got %s", err)
	}
	revealed, _ := RevealBits(embedded)
	for k := range revealed {
		if revealed[k] != payload[k] {
			t.Errorf("Bit %d expected %t, got %t", k, payload[k], revealed[k])
		}
	}
}

func TestEmbedBitsPreconditions(t *testing.T) {
	if _, err := EmbedBits(image.ARGBImage{}, []bool{true}); !errors.Is(err, ErrEmptyCover) {
		t.Errorf("Expected ErrEmptyCover, got %v", err)
	}
	if _, err := EmbedBits(image.ARGBImage{{1, 2}, {3}}, []bool{true}); !errors.Is(err, image.ErrNotRectangular) {
		t.Errorf("Expected ErrNotRectangular, got %v", err)
	}
	if revealed, err := RevealBits(image.ARGBImage{}); err != nil || len(revealed) != 0 {
		t.Errorf("Expected no bits from an empty image, got %v %v", revealed, err)
	}
}

func TestEmbedRevealBW(t *testing.T) {
	cover := test.GenerateCover(testCoverSize, testCoverSize, true)
	payload := randomBinaryImage(testCoverSize/2, testCoverSize/4)

	embedded, err := EmbedBW(cover, payload)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	revealed, err := RevealBW(embedded)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	for r := 0; r < testCoverSize; r++ {
		for c := 0; c < testCoverSize; c++ {
			if r < len(payload) && c < len(payload[0]) {
				if revealed[r][c] != payload[r][c] {
					t.Fatalf("Pixel (%d, %d) expected %t, got %t", r, c, payload[r][c], revealed[r][c])
				}
			} else if embedded[r][c] != cover[r][c] {
				t.Fatalf("Pixel (%d, %d) outside the payload was modified", r, c)
			}
		}
	}
	checkOnlyLSBsChanged(t, cover, embedded)
}

func TestEmbedBWPreconditions(t *testing.T) {
	cover := test.GenerateCover(4, 4, true)
	if _, err := EmbedBW(cover, randomBinaryImage(5, 1)); !errors.Is(err, ErrCoverTooSmall) {
		t.Errorf("Expected ErrCoverTooSmall for extra rows, got %v", err)
	}
	if _, err := EmbedBW(cover, randomBinaryImage(1, 5)); !errors.Is(err, ErrCoverTooSmall) {
		t.Errorf("Expected ErrCoverTooSmall for extra columns, got %v", err)
	}
	if _, err := EmbedBW(cover, image.BinaryImage{}); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Expected ErrEmptyPayload, got %v", err)
	}
	if _, err := EmbedBW(cover, image.BinaryImage{{true}, {true, false}}); !errors.Is(err, image.ErrNotRectangular) {
		t.Errorf("Expected ErrNotRectangular, got %v", err)
	}
	if _, err := RevealBW(test.GenerateCover(2, 3, true)); !errors.Is(err, ErrNotSquare) {
		t.Errorf("Expected ErrNotSquare, got %v", err)
	}
}

func TestEmbedGrayAndARGB(t *testing.T) {
	cover := test.GenerateCover(3, 3, true)
	payload := image.ARGBImage{
		{image.ARGB(255, 255, 255, 255), image.ARGB(255, 0, 0, 0)},
		{image.ARGB(255, 9, 6, 3), image.ARGB(255, 200, 100, 150)},
	}

	embedded, err := EmbedARGB(cover, payload, 128)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	revealed, err := RevealBW(embedded)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	expected := image.BinaryImage{{true, false}, {false, true}}
	for r := range expected {
		for c := range expected[r] {
			if revealed[r][c] != expected[r][c] {
				t.Errorf("Pixel (%d, %d) expected %t, got %t", r, c, expected[r][c], revealed[r][c])
			}
		}
	}

	if _, err = EmbedGray(cover, image.GrayImage{{256}}, 128); !errors.Is(err, image.ErrGrayRange) {
		t.Errorf("Expected ErrGrayRange, got %v", err)
	}
	if _, err = EmbedGray(image.ARGBImage{}, image.GrayImage{{1}}, 128); !errors.Is(err, ErrEmptyCover) {
		t.Errorf("Expected ErrEmptyCover from EmbedGray, got %v", err)
	}
	if _, err = EmbedARGB(image.ARGBImage{{}}, payload, 128); !errors.Is(err, ErrEmptyCover) {
		t.Errorf("Expected ErrEmptyCover from EmbedARGB, got %v", err)
	}
	if _, err = EmbedARGB(image.ARGBImage{{1, 2}, {3}}, payload, 128); !errors.Is(err, image.ErrNotRectangular) {
		t.Errorf("Expected ErrNotRectangular from EmbedARGB, got %v", err)
	}
}

func checkOnlyLSBsChanged(t *testing.T, cover, embedded image.ARGBImage) {
	t.Helper()
	for r := range cover {
		for c := range cover[r] {
			if cover[r][c]&^1 != embedded[r][c]&^1 {
				t.Fatalf("Pixel (%d, %d) changed beyond its LSB: %#08x -> %#08x", r, c, cover[r][c], embedded[r][c])
			}
		}
	}
}

func randomBinaryImage(rows, cols int) image.BinaryImage {
	payloadBits := test.GenerateRandomBits(rows * cols)
	payload := make(image.BinaryImage, rows)
	for r := range payload {
		payload[r] = payloadBits[r*cols : (r+1)*cols]
	}
	return payload
}

func BenchmarkEmbedBits(b *testing.B) {
	cover := test.GenerateCover(1000, 1000, true)
	payload := test.GenerateRandomBits(1000 * 1000)
	b.SetBytes(int64(len(payload) / bits.BitsInByte))
	for i := 0; i < b.N; i++ {
		if _, err := EmbedBits(cover, payload); err != nil {
			b.Fatalf("Error during embedding: %s", err)
		}
	}
}
