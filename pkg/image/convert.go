package image

import "fmt"

type (
	// ARGBImage is a matrix of packed pixels, indexed [row][column]
	ARGBImage [][]uint32
	// GrayImage holds gray scale values between 0 and 255
	GrayImage [][]int
	// BinaryImage holds one bit per pixel, true being white
	BinaryImage [][]bool
)

// dimensions reports the shape of a matrix. ok is false for the canonical empty image, i.e. no rows, or a first row
// without columns, in which case the remaining rows are not inspected
func dimensions[T any](img [][]T) (rows, cols int, ok bool, err error) {
	if len(img) == 0 || len(img[0]) == 0 {
		return 0, 0, false, nil
	}
	rows, cols = len(img), len(img[0])
	for r := 1; r < rows; r++ {
		if len(img[r]) != cols {
			return 0, 0, false, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrNotRectangular, r, len(img[r]), cols)
		}
	}
	return rows, cols, true, nil
}

// Dimensions returns the number of rows and columns of img, or an error if it is not rectangular. The empty image
// has 0 rows and 0 columns
func Dimensions[T any](img [][]T) (rows, cols int, err error) {
	rows, cols, _, err = dimensions(img)
	return rows, cols, err
}

func mapImage[From, To any](img [][]From, convert func(From) (To, error)) ([][]To, error) {
	rows, cols, ok, err := dimensions(img)
	if err != nil {
		return nil, err
	} else if !ok {
		return [][]To{}, nil
	}

	result := make([][]To, rows)
	for r := 0; r < rows; r++ {
		result[r] = make([]To, cols)
		for c := 0; c < cols; c++ {
			if result[r][c], err = convert(img[r][c]); err != nil {
				return nil, fmt.Errorf("pixel (%d, %d): %w", r, c, err)
			}
		}
	}
	return result, nil
}

func ToGray(img ARGBImage) (GrayImage, error) {
	return mapImage(img, func(pixel uint32) (int, error) {
		return Gray(pixel), nil
	})
}

func ToBinary(img GrayImage, threshold int) (BinaryImage, error) {
	return mapImage(img, func(gray int) (bool, error) {
		return Binary(gray, threshold)
	})
}

// FromGray rebuilds an opaque ARGB image where each pixel is the neutral gray of its value. Colour and alpha lost by
// ToGray are not restored
func FromGray(img GrayImage) (ARGBImage, error) {
	return mapImage(img, func(gray int) (uint32, error) {
		if gray < 0 || gray > MaxValue {
			return 0, fmt.Errorf("%w: got %d", ErrGrayRange, gray)
		}
		return ARGB(Opaque, uint8(gray), uint8(gray), uint8(gray)), nil
	})
}

// FromBinary rebuilds an opaque black and white ARGB image
func FromBinary(img BinaryImage) (ARGBImage, error) {
	return mapImage(img, func(white bool) (uint32, error) {
		if white {
			return ARGB(Opaque, MaxValue, MaxValue, MaxValue), nil
		}
		return ARGB(Opaque, 0, 0, 0), nil
	})
}

// Clone returns a deep copy of img
func (img ARGBImage) Clone() ARGBImage {
	clone := make(ARGBImage, len(img))
	for r := range img {
		clone[r] = make([]uint32, len(img[r]))
		copy(clone[r], img[r])
	}
	return clone
}
