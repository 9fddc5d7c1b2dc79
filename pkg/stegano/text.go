package stegano

import (
	"encoding/binary"
	"errors"
	"fmt"

	"lsbkit/internal/bits"
	"lsbkit/pkg/image"
	"lsbkit/pkg/text"
)

const (
	// frameHeaderBytes holds the big endian length of a framed payload
	frameHeaderBytes = 8
	frameHeaderBits  = frameHeaderBytes * bits.BitsInByte
)

var (
	ErrFrameBounds = errors.New("frame length exceeds image bounds, the image was likely not encoded as a frame")
)

// EmbedText hides message in cover. message is interpreted as text: it is decoded and re-encoded with text.Encoding,
// so invalid sequences do not survive, use EmbedBytes for arbitrary data. A message longer than the cover capacity is
// truncated, and an empty message yields a copy of the cover
func EmbedText(cover image.ARGBImage, message []byte) (image.ARGBImage, error) {
	if _, _, err := checkCover(cover); err != nil {
		return nil, err
	}
	return EmbedBits(cover, text.ToBits(text.ToString(message)))
}

// RevealText reads the whole LSB plane of img as text. The trailing bits that do not make up a full byte are
// dropped
func RevealText(img image.ARGBImage) ([]byte, error) {
	revealed, err := revealWholeBytes(img)
	if err != nil {
		return nil, err
	}
	return text.ToBytes(text.ToString(revealed)), nil
}

// EmbedBytes hides data bit for bit in cover, most significant bit first, truncating it to the cover capacity
func EmbedBytes(cover image.ARGBImage, data []byte) (image.ARGBImage, error) {
	if _, _, err := checkCover(cover); err != nil {
		return nil, err
	}
	return EmbedBits(cover, bits.BytesToBits(data))
}

// RevealBytes reads the whole LSB plane of img as bytes, dropping the trailing partial byte
func RevealBytes(img image.ARGBImage) ([]byte, error) {
	return revealWholeBytes(img)
}

func revealWholeBytes(img image.ARGBImage) ([]byte, error) {
	if _, _, err := checkCover(img); err != nil {
		return nil, err
	}
	revealed, err := RevealBits(img)
	if err != nil {
		return nil, err
	}
	wholeBits := len(revealed) - len(revealed)%bits.BitsInByte
	return bits.BitsToBytes(revealed[:wholeBits])
}

// FramedBits is the number of cover pixels EmbedFramed uses for a payload of dataLength bytes
func FramedBits(dataLength int) int {
	return frameHeaderBits + dataLength*bits.BitsInByte
}

// EmbedFramed hides data prefixed by its length, so that RevealFramed can recover exactly data. Unlike the other
// embedding functions, a frame that does not fit in the cover is rejected
func EmbedFramed(cover image.ARGBImage, data []byte) (image.ARGBImage, error) {
	rows, cols, err := checkCover(cover)
	if err != nil {
		return nil, err
	}
	requiredBits := FramedBits(len(data))
	if requiredBits > rows*cols {
		return nil, fmt.Errorf("%w: frame needs %d bits, cover holds %d", ErrCoverTooSmall, requiredBits, rows*cols)
	}

	frame := make([]byte, frameHeaderBytes, frameHeaderBytes+len(data))
	binary.BigEndian.PutUint64(frame, uint64(len(data)))
	frame = append(frame, data...)
	return EmbedBits(cover, bits.BytesToBits(frame))
}

func RevealFramed(img image.ARGBImage) ([]byte, error) {
	revealed, err := revealWholeBytes(img)
	if err != nil {
		return nil, err
	}
	if len(revealed) < frameHeaderBytes {
		return nil, fmt.Errorf("%w: image holds %d bytes, header needs %d", ErrFrameBounds, len(revealed), frameHeaderBytes)
	}

	dataLength := binary.BigEndian.Uint64(revealed[:frameHeaderBytes])
	if dataLength > uint64(len(revealed)-frameHeaderBytes) {
		return nil, fmt.Errorf("%w: header claims %d bytes, image holds %d", ErrFrameBounds, dataLength, len(revealed)-frameHeaderBytes)
	}
	data := make([]byte, dataLength)
	copy(data, revealed[frameHeaderBytes:])
	return data, nil
}
