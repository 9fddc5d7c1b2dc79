package image

import (
	"fmt"
	"math"
)

// PSNR computes the peak signal-to-noise ratio, in dB, between the colour channels of two images of the same shape.
// Identical images yield +Inf
func PSNR(original, modified ARGBImage) (float64, error) {
	rows, cols, err := Dimensions(original)
	if err != nil {
		return 0, err
	}
	modRows, modCols, err := Dimensions(modified)
	if err != nil {
		return 0, err
	}
	if rows != modRows || cols != modCols {
		return 0, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, rows, cols, modRows, modCols)
	}
	if rows == 0 {
		return math.Inf(1), nil
	}

	var squaredError float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, channel := range []Channel{Red, Green, Blue} {
				a, _ := Component(original[r][c], channel)
				b, _ := Component(modified[r][c], channel)
				diff := float64(a) - float64(b)
				squaredError += diff * diff
			}
		}
	}
	mse := squaredError / float64(rows*cols*3)
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(MaxValue/math.Sqrt(mse)), nil
}
