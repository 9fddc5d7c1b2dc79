package workflow

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"lsbkit/pkg/crypto"
)

var (
	ErrUnknownCipher = errors.New("unknown cipher algorithm")
	ErrAmbiguousKey  = errors.New("supply either a text key or a hex key, not both")
)

// singleByteAlgorithms take a one byte key, which can be given as a decimal number on the command line
var singleByteAlgorithms = map[string]bool{
	"caesar": true,
	"xor":    true,
}

// Cipher selects the algorithm used to scramble a payload before embedding it, and to unscramble it once revealed.
// Algorithm is the prefix of a registered operation pair, such as caesar for caesar_encrypt and caesar_decrypt
type Cipher struct {
	Algorithm string
	Key       []byte
}

func (c *Cipher) operation(direction crypto.OperationType) (crypto.Operation, error) {
	name := fmt.Sprintf("%s_%s", c.Algorithm, direction)
	op, found := crypto.GetOperation(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, c.Algorithm)
	}
	return op, nil
}

// Validate checks that both directions of the algorithm are registered
func (c *Cipher) Validate() error {
	for _, direction := range []crypto.OperationType{crypto.OperationTypeEncrypt, crypto.OperationTypeDecrypt} {
		if _, err := c.operation(direction); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cipher) Encrypt(ctx context.Context, data []byte) ([]byte, error) {
	return c.apply(ctx, crypto.OperationTypeEncrypt, data)
}

func (c *Cipher) Decrypt(ctx context.Context, data []byte) ([]byte, error) {
	return c.apply(ctx, crypto.OperationTypeDecrypt, data)
}

func (c *Cipher) apply(ctx context.Context, direction crypto.OperationType, data []byte) ([]byte, error) {
	op, err := c.operation(direction)
	if err != nil {
		return nil, err
	}
	return op.Execute(ctx, data, map[string]interface{}{crypto.KeyParam: c.Key})
}

// ParseKey turns the key flags of the command line into raw key bytes. A hex key is decoded, a text key is used as is
// unless the algorithm takes a single byte and the text is a number between 0 and 255
func ParseKey(algorithm, key, keyHex string) ([]byte, error) {
	switch {
	case key != "" && keyHex != "":
		return nil, ErrAmbiguousKey
	case keyHex != "":
		decoded, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("decoding hex key: %w", err)
		}
		return decoded, nil
	case singleByteAlgorithms[algorithm]:
		if n, err := strconv.ParseUint(key, 10, 8); err == nil {
			return []byte{byte(n)}, nil
		}
	}
	return []byte(key), nil
}
