// Package text converts between strings, their byte encoding and the bit sequences that get embedded into images.
package text

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"lsbkit/internal/bits"
)

// Encoding is the character encoding used for every text conversion. It is fixed so that text embedded by one
// version of lsbkit can be revealed by another.
var Encoding encoding.Encoding = unicode.UTF8

var ErrBitCount = errors.New("text bit sequence length must be a multiple of 8")

// ToBytes encodes s using Encoding. Ill-formed sequences in s are replaced with U+FFFD.
func ToBytes(s string) []byte {
	encoded, err := Encoding.NewEncoder().String(s)
	if err != nil {
		// the UTF-8 encoder replaces ill-formed input instead of failing
		return []byte(s)
	}
	return []byte(encoded)
}

// ToString decodes b using Encoding. Invalid sequences are replaced with U+FFFD.
func ToString(b []byte) string {
	decoded, err := Encoding.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

func ToBits(s string) []bool {
	return bits.BytesToBits(ToBytes(s))
}

func FromBits(bitArr []bool) (string, error) {
	if len(bitArr)%bits.BitsInByte != 0 {
		return "", fmt.Errorf("%w: got %d bits", ErrBitCount, len(bitArr))
	}
	decodedBytes, err := bits.BitsToBytes(bitArr)
	if err != nil {
		return "", err
	}
	return ToString(decodedBytes), nil
}
