// Package imageio moves images between their on-disk encodings and the packed ARGB matrices the steganography
// functions work on. PNG, JPEG and BMP can be decoded, PNG and BMP encoded. JPEG is never written since its lossy
// compression would wipe out the least significant bits.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	stdImage "image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"lsbkit/pkg/image"
)

type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported output format, use png or bmp")
	ErrInvalidImage      = errors.New("input is not a decodable png, jpeg or bmp image")
	ErrTransparentBMP    = errors.New("bmp output cannot hold transparency, use png for images with alpha")
)

// FormatFromPath picks the output format from the extension of path
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads an image in any registered format and returns it as a packed ARGB matrix, along with the name of the
// format it was stored in
func Decode(r io.Reader) (image.ARGBImage, string, error) {
	src, format, err := stdImage.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return image.FromNRGBA(toNRGBA(src)), format, nil
}

func toNRGBA(src stdImage.Image) *stdImage.NRGBA {
	if nrgba, ok := src.(*stdImage.NRGBA); ok {
		return nrgba
	}
	// TODO: Work with 16-bit images, the lower byte of every channel is dropped here
	img := stdImage.NewNRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, img.Bounds().Min, draw.Src)
	return img
}

// Encode writes img to w. The compression level only applies to PNG
func Encode(w io.Writer, img image.ARGBImage, format Format, level png.CompressionLevel) error {
	nrgba, err := image.ToNRGBA(img)
	if err != nil {
		return err
	}

	switch format {
	case PNG:
		encoder := png.Encoder{CompressionLevel: level}
		return encoder.Encode(w, nrgba)
	case BMP:
		// bmp.Encode writes every pixel opaque
		if !nrgba.Opaque() {
			return ErrTransparentBMP
		}
		return bmp.Encode(w, nrgba)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func ReadFile(path string) (image.ARGBImage, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// WriteFile encodes img into path, in the format matching its extension
func WriteFile(path string, img image.ARGBImage, level png.CompressionLevel) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err = Encode(w, img, format, level); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
