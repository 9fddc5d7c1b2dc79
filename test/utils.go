package test

import (
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomBits returns numOfBitsToGenerate bits drawn uniformly at random
func GenerateRandomBits(numOfBitsToGenerate int) []bool {
	generatedBits := make([]bool, numOfBitsToGenerate)
	for i := range generatedBits {
		generatedBits[i] = rand.Intn(2) == 1
	}
	return generatedBits
}

// GenerateCover builds a rows x cols packed ARGB matrix with random colour channels. Opaque covers have every alpha
// channel set to 255
func GenerateCover(rows, cols int, opaque bool) [][]uint32 {
	cover := make([][]uint32, rows)
	for r := range cover {
		cover[r] = make([]uint32, cols)
		for c := range cover[r] {
			pixel := rand.Uint32()
			if opaque {
				pixel |= 0xff000000
			}
			cover[r][c] = pixel
		}
	}
	return cover
}
