package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, which is the order in which payload bits are laid out in a cover image
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*BitsInByte + (BitsInByte - int(br.currentBitIdx))
}

// ReadBit returns the next bit, or false once the reader is exhausted
func (br *BitReader) ReadBit() bool {
	if len(br.bytes) == 0 {
		return false
	}
	bit := (br.bytes[0]>>(BitsInByte-1-br.currentBitIdx))&1 == 1
	br.currentBitIdx++
	if br.currentBitIdx == BitsInByte {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}

// ReadBits packs up to 8 of the next bits into the low bits of the returned byte, first bit read being the most
// significant. Reading past the end pads with zeroes
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for numOfBitsRead := uint(0); numOfBitsRead < bitsToRead && numOfBitsRead < BitsInByte; numOfBitsRead++ {
		byteWithRequestedBits <<= 1
		if br.ReadBit() {
			byteWithRequestedBits |= 1
		}
	}
	return byteWithRequestedBits
}
