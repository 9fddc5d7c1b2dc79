// Package crypto implements byte-wise classical ciphers. None of them offer real confidentiality, they exist to
// scramble a message before it is embedded in an image.
package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
)

var (
	ErrEmptyKey  = errors.New("key must not be empty")
	ErrPadLength = errors.New("one-time pad must be as long as the data")
	ErrBlockSize = errors.New("cipher text length must be a multiple of the block size")
)

// CaesarEncrypt shifts every byte by key, modulo 256
func CaesarEncrypt(plainText []byte, key byte) []byte {
	cipherText := make([]byte, len(plainText))
	for i, b := range plainText {
		cipherText[i] = b + key
	}
	return cipherText
}

func CaesarDecrypt(cipherText []byte, key byte) []byte {
	plainText := make([]byte, len(cipherText))
	for i, b := range cipherText {
		plainText[i] = b - key
	}
	return plainText
}

// VigenereEncrypt shifts byte i by keyword[i % len(keyword)], modulo 256
func VigenereEncrypt(plainText, keyword []byte) ([]byte, error) {
	if len(keyword) == 0 {
		return nil, fmt.Errorf("vigenere: %w", ErrEmptyKey)
	}
	cipherText := make([]byte, len(plainText))
	for i, b := range plainText {
		cipherText[i] = b + keyword[i%len(keyword)]
	}
	return cipherText, nil
}

func VigenereDecrypt(cipherText, keyword []byte) ([]byte, error) {
	if len(keyword) == 0 {
		return nil, fmt.Errorf("vigenere: %w", ErrEmptyKey)
	}
	plainText := make([]byte, len(cipherText))
	for i, b := range cipherText {
		plainText[i] = b - keyword[i%len(keyword)]
	}
	return plainText, nil
}

// XOR applies key to every byte. It is its own inverse
func XOR(data []byte, key byte) []byte {
	result := make([]byte, len(data))
	for i, b := range data {
		result[i] = b ^ key
	}
	return result
}

func XOREncrypt(plainText []byte, key byte) []byte {
	return XOR(plainText, key)
}

func XORDecrypt(cipherText []byte, key byte) []byte {
	return XOR(cipherText, key)
}

// OneTimePad XORs data with a pad of the same length. It is its own inverse. Empty data yields an empty result
// whatever the pad
func OneTimePad(data, pad []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if len(pad) != len(data) {
		return nil, fmt.Errorf("%w: data is %d bytes, pad is %d", ErrPadLength, len(data), len(pad))
	}
	result := make([]byte, len(data))
	for i := range data {
		result[i] = data[i] ^ pad[i]
	}
	return result, nil
}

// GeneratePad returns n random bytes suitable for OneTimePad
func GeneratePad(n int) ([]byte, error) {
	pad := make([]byte, n)
	if _, err := rand.Read(pad); err != nil {
		return nil, fmt.Errorf("generating pad: %w", err)
	}
	return pad, nil
}

// OneTimePadRandom encrypts plainText with a freshly generated pad, which is returned alongside the cipher text
func OneTimePadRandom(plainText []byte) (cipherText, pad []byte, err error) {
	pad, err = GeneratePad(len(plainText))
	if err != nil {
		return nil, nil, err
	}
	cipherText, err = OneTimePad(plainText, pad)
	if err != nil {
		return nil, nil, err
	}
	return cipherText, pad, nil
}

// CBCEncrypt chains blocks of len(iv) bytes: the first block is XORed with iv, every following block with the
// previous cipher text block. There is no block cipher involved. A trailing partial block is XORed with the leading
// bytes of the previous block
func CBCEncrypt(plainText, iv []byte) ([]byte, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("cbc: %w", ErrEmptyKey)
	}
	blockSize := len(iv)
	cipherText := make([]byte, len(plainText))
	previousBlock := iv
	for start := 0; start < len(plainText); start += blockSize {
		end := min(start+blockSize, len(plainText))
		for i := start; i < end; i++ {
			cipherText[i] = plainText[i] ^ previousBlock[i-start]
		}
		previousBlock = cipherText[start:end]
	}
	return cipherText, nil
}

// CBCDecrypt reverses CBCEncrypt. The cipher text must be made of whole blocks, see CBCDecryptPartial for cipher text
// produced from unaligned data
func CBCDecrypt(cipherText, iv []byte) ([]byte, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("cbc: %w", ErrEmptyKey)
	}
	if len(cipherText)%len(iv) != 0 {
		return nil, fmt.Errorf("%w: %d bytes with blocks of %d", ErrBlockSize, len(cipherText), len(iv))
	}
	return cbcDecrypt(cipherText, iv), nil
}

// CBCDecryptPartial reverses CBCEncrypt for cipher text of any length, a trailing partial block being XORed with the
// leading bytes of the previous block
func CBCDecryptPartial(cipherText, iv []byte) ([]byte, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("cbc: %w", ErrEmptyKey)
	}
	return cbcDecrypt(cipherText, iv), nil
}

func cbcDecrypt(cipherText, iv []byte) []byte {
	blockSize := len(iv)
	plainText := make([]byte, len(cipherText))
	previousBlock := iv
	for start := 0; start < len(cipherText); start += blockSize {
		end := min(start+blockSize, len(cipherText))
		for i := start; i < end; i++ {
			plainText[i] = cipherText[i] ^ previousBlock[i-start]
		}
		previousBlock = cipherText[start:end]
	}
	return plainText
}
