// Package image implements the packed ARGB pixel model used by lsbkit, along with the gray scale and binary
// representations an image goes through before being embedded into a cover.
package image

import (
	"errors"
	"fmt"
)

// Channel identifies one of the four 8-bit components of a packed pixel
type Channel byte

const (
	Alpha Channel = iota
	Red
	Green
	Blue
)

const (
	Opaque   = 0xff
	MaxValue = 0xff
)

var (
	ErrGrayRange         = errors.New("gray value must be between 0 and 255")
	ErrUnknownChannel    = errors.New("unknown pixel channel")
	ErrNotRectangular    = errors.New("all rows of an image must have the same length")
	ErrDimensionMismatch = errors.New("images do not have the same dimensions")
)

func (c Channel) shift() (uint, error) {
	switch c {
	case Alpha:
		return 24, nil
	case Red:
		return 16, nil
	case Green:
		return 8, nil
	case Blue:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownChannel, c)
}

func (c Channel) String() string {
	switch c {
	case Alpha:
		return "alpha"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", byte(c))
}

// ARGB packs the four channels into a single pixel, alpha being the most significant byte
func ARGB(alpha, red, green, blue uint8) uint32 {
	return uint32(alpha)<<24 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

func Component(pixel uint32, c Channel) (uint8, error) {
	shift, err := c.shift()
	if err != nil {
		return 0, err
	}
	return uint8(pixel >> shift), nil
}

func AlphaOf(pixel uint32) uint8 {
	return uint8(pixel >> 24)
}

func RedOf(pixel uint32) uint8 {
	return uint8(pixel >> 16)
}

func GreenOf(pixel uint32) uint8 {
	return uint8(pixel >> 8)
}

func BlueOf(pixel uint32) uint8 {
	return uint8(pixel)
}

// Gray averages the red, green and blue channels. Alpha is ignored
func Gray(pixel uint32) int {
	return (int(RedOf(pixel)) + int(GreenOf(pixel)) + int(BlueOf(pixel))) / 3
}

// Binary reports whether gray reaches threshold, in which case the pixel is considered white
func Binary(gray, threshold int) (bool, error) {
	if gray < 0 || gray > MaxValue {
		return false, fmt.Errorf("%w: got %d", ErrGrayRange, gray)
	}
	return gray >= threshold, nil
}
