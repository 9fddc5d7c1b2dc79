package image

import (
	"image"
)

// FromNRGBA converts a stdlib image into a packed ARGB matrix with one row per line of the image. Channels are
// copied as stored, non-premultiplied, so no bits are lost
func FromNRGBA(img *image.NRGBA) ARGBImage {
	bounds := img.Bounds()
	result := make(ARGBImage, bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		result[y] = make([]uint32, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			offset := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			pixel := img.Pix[offset : offset+4]
			result[y][x] = ARGB(pixel[3], pixel[0], pixel[1], pixel[2])
		}
	}
	return result
}

// ToNRGBA is the inverse of FromNRGBA
func ToNRGBA(img ARGBImage) (*image.NRGBA, error) {
	rows, cols, err := Dimensions(img)
	if err != nil {
		return nil, err
	}

	result := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixel := img[y][x]
			offset := result.PixOffset(x, y)
			result.Pix[offset] = RedOf(pixel)
			result.Pix[offset+1] = GreenOf(pixel)
			result.Pix[offset+2] = BlueOf(pixel)
			result.Pix[offset+3] = AlphaOf(pixel)
		}
	}
	return result, nil
}
