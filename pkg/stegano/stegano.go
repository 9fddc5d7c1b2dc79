// Package stegano hides bit sequences, images and text in the least significant bit of every pixel of a cover image,
// and reveals them back.
//
// Cover pixels are visited in row-major order and each one carries a single bit, so the capacity of a cover is its
// number of pixels. Covers are never modified in place, every embedding returns a new image.
package stegano

import (
	"errors"
	"fmt"

	"lsbkit/internal/bits"
	"lsbkit/pkg/image"
)

var (
	ErrEmptyCover    = errors.New("cover image must have at least one row and one column")
	ErrEmptyPayload  = errors.New("payload image must have at least one row and one column")
	ErrCoverTooSmall = errors.New("cover image is not big enough to contain the payload")
	ErrNotSquare     = errors.New("image must have as many rows as columns")
)

func checkCover(cover image.ARGBImage) (rows, cols int, err error) {
	rows, cols, err = image.Dimensions(cover)
	if err != nil {
		return 0, 0, err
	} else if rows == 0 {
		return 0, 0, ErrEmptyCover
	}
	return rows, cols, nil
}

// Capacity is the number of bits the flat embedding functions can store in img
func Capacity(img image.ARGBImage) int {
	rows, cols, err := image.Dimensions(img)
	if err != nil {
		return 0
	}
	return rows * cols
}

// EmbedBits stores payload in the LSBs of the first len(payload) pixels of cover. Bits that do not fit in the cover
// are dropped, and pixels past the payload are copied unchanged
func EmbedBits(cover image.ARGBImage, payload []bool) (image.ARGBImage, error) {
	rows, cols, err := checkCover(cover)
	if err != nil {
		return nil, err
	}

	result := cover.Clone()
	bitsToEmbed := min(len(payload), rows*cols)
	for k := 0; k < bitsToEmbed; k++ {
		r, c := k/cols, k%cols
		result[r][c] = bits.SetLSB(cover[r][c], payload[k])
	}
	return result, nil
}

// RevealBits reads the LSB of every pixel of img in row-major order
func RevealBits(img image.ARGBImage) ([]bool, error) {
	rows, cols, err := image.Dimensions(img)
	if err != nil {
		return nil, err
	}

	revealed := make([]bool, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			revealed = append(revealed, bits.GetLSB(img[r][c]))
		}
	}
	return revealed, nil
}

// EmbedBW hides a binary image in the top left corner of cover. Only pixels inside the bounding box of payload are
// modified
func EmbedBW(cover image.ARGBImage, payload image.BinaryImage) (image.ARGBImage, error) {
	rows, cols, err := checkCover(cover)
	if err != nil {
		return nil, err
	}
	payloadRows, payloadCols, err := image.Dimensions(payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	} else if payloadRows == 0 {
		return nil, ErrEmptyPayload
	}
	if payloadRows > rows || payloadCols > cols {
		return nil, fmt.Errorf("%w: cover is %dx%d, payload is %dx%d", ErrCoverTooSmall, rows, cols, payloadRows, payloadCols)
	}

	result := cover.Clone()
	for r := 0; r < payloadRows; r++ {
		for c := 0; c < payloadCols; c++ {
			result[r][c] = bits.SetLSB(cover[r][c], payload[r][c])
		}
	}
	return result, nil
}

// RevealBW returns the LSB plane of a square image
func RevealBW(img image.ARGBImage) (image.BinaryImage, error) {
	rows, cols, err := image.Dimensions(img)
	if err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, ErrEmptyCover
	} else if rows != cols {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNotSquare, rows, cols)
	}

	revealed := make(image.BinaryImage, rows)
	for r := 0; r < rows; r++ {
		revealed[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			revealed[r][c] = bits.GetLSB(img[r][c])
		}
	}
	return revealed, nil
}

// EmbedGray binarizes payload with threshold and embeds the result with EmbedBW
func EmbedGray(cover image.ARGBImage, payload image.GrayImage, threshold int) (image.ARGBImage, error) {
	if _, _, err := checkCover(cover); err != nil {
		return nil, err
	}
	binary, err := image.ToBinary(payload, threshold)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return EmbedBW(cover, binary)
}

// EmbedARGB converts payload to gray scale and embeds it with EmbedGray
func EmbedARGB(cover image.ARGBImage, payload image.ARGBImage, threshold int) (image.ARGBImage, error) {
	if _, _, err := checkCover(cover); err != nil {
		return nil, err
	}
	gray, err := image.ToGray(payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return EmbedGray(cover, gray, threshold)
}
