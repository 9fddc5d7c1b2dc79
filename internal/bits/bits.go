package bits

import (
	"errors"
	"fmt"
)

const (
	BitsInByte = 8
	BitsInWord = 32
)

var (
	ErrBitPosition = errors.New("bit position must be between 0 and 31")
	ErrBitCount    = errors.New("number of bits is not a multiple of 8")
)

// SetBit returns value with the bit at pos set to bit. Every other bit is left as is.
func SetBit(value uint32, bit bool, pos int) (uint32, error) {
	if pos < 0 || pos >= BitsInWord {
		return 0, fmt.Errorf("%w: got %d", ErrBitPosition, pos)
	}
	if bit {
		return value | 1<<pos, nil
	}
	return value &^ (1 << pos), nil
}

// GetBit reports whether the bit at pos is set.
func GetBit(value uint32, pos int) (bool, error) {
	if pos < 0 || pos >= BitsInWord {
		return false, fmt.Errorf("%w: got %d", ErrBitPosition, pos)
	}
	return value&(1<<pos) != 0, nil
}

func SetLSB(value uint32, bit bool) uint32 {
	if bit {
		return value | 1
	}
	return value &^ 1
}

func GetLSB(value uint32) bool {
	return value&1 == 1
}

// ByteToBits splits b into 8 bits, most significant first.
func ByteToBits(b byte) []bool {
	bitArr := make([]bool, BitsInByte)
	for i := 0; i < BitsInByte; i++ {
		bitArr[i] = (b>>(BitsInByte-1-i))&1 == 1
	}
	return bitArr
}

// BitsToByte is the inverse of ByteToBits, and requires exactly 8 bits.
func BitsToByte(bitArr []bool) (byte, error) {
	if len(bitArr) != BitsInByte {
		return 0, fmt.Errorf("%w: expected exactly 8 bits, got %d", ErrBitCount, len(bitArr))
	}
	var b byte
	for _, bit := range bitArr {
		b <<= 1
		if bit {
			b |= 1
		}
	}
	return b, nil
}

func BytesToBits(data []byte) []bool {
	br := NewBitReader(data)
	bitArr := make([]bool, 0, len(data)*BitsInByte)
	for br.BitsLeftToRead() > 0 {
		bitArr = append(bitArr, br.ReadBits(1) == 1)
	}
	return bitArr
}

// BitsToBytes groups bitArr into bytes, most significant bit first. The length of bitArr must be a
// multiple of 8
func BitsToBytes(bitArr []bool) ([]byte, error) {
	if len(bitArr)%BitsInByte != 0 {
		return nil, fmt.Errorf("%w: got %d bits", ErrBitCount, len(bitArr))
	}
	data := make([]byte, len(bitArr)/BitsInByte)
	for i := range data {
		b, err := BitsToByte(bitArr[i*BitsInByte : (i+1)*BitsInByte])
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return data, nil
}
