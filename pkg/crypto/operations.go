package crypto

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// KeyParam is the params entry every registered operation reads its key from
const KeyParam = "key"

var (
	ErrInvalidKey = errors.New("key has an unsupported type or value")
	ErrKeyLength  = errors.New("single byte ciphers need a one byte key")
)

// keyBytes extracts params["key"] as raw bytes. Strings are used as is and integers are accepted as a one byte key
func keyBytes(params map[string]interface{}) ([]byte, error) {
	raw, ok := params[KeyParam]
	if !ok || raw == nil {
		return nil, ErrEmptyKey
	}

	switch k := raw.(type) {
	case []byte:
		return k, nil
	case string:
		return []byte(k), nil
	case byte:
		return []byte{k}, nil
	case int:
		return intKey(int64(k))
	case int64:
		return intKey(k)
	case float64:
		if k != math.Trunc(k) {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidKey, k)
		}
		return intKey(int64(k))
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidKey, raw)
	}
}

func intKey(k int64) ([]byte, error) {
	if k < 0 || k > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d is outside 0-255", ErrInvalidKey, k)
	}
	return []byte{byte(k)}, nil
}

func singleByteKey(params map[string]interface{}) (byte, error) {
	key, err := keyBytes(params)
	if err != nil {
		return 0, err
	}
	if len(key) != 1 {
		return 0, fmt.Errorf("%w: got %d bytes", ErrKeyLength, len(key))
	}
	return key[0], nil
}

// byteKeyOperation covers the ciphers keyed by a single byte
type byteKeyOperation struct {
	BaseOperation
	transform func(data []byte, key byte) []byte
}

func (op *byteKeyOperation) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := singleByteKey(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name(), err)
	}
	return op.transform(input, key), nil
}

// sliceKeyOperation covers the ciphers keyed by a byte slice (keyword, pad or iv)
type sliceKeyOperation struct {
	BaseOperation
	transform func(data, key []byte) ([]byte, error)
}

func (op *sliceKeyOperation) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := keyBytes(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name(), err)
	}
	return op.transform(input, key)
}

func newBytePair(name, description string, encrypt, decrypt func([]byte, byte) []byte) (Operation, Operation) {
	enc := &byteKeyOperation{
		BaseOperation: BaseOperation{
			NameValue:        name + "_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: description + " (encrypt)",
		},
		transform: encrypt,
	}
	dec := &byteKeyOperation{
		BaseOperation: BaseOperation{
			NameValue:        name + "_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: description + " (decrypt)",
		},
		transform: decrypt,
	}
	enc.ReverseOp = dec
	dec.ReverseOp = enc
	return enc, dec
}

func newSlicePair(name, description string, encrypt, decrypt func([]byte, []byte) ([]byte, error)) (Operation, Operation) {
	enc := &sliceKeyOperation{
		BaseOperation: BaseOperation{
			NameValue:        name + "_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: description + " (encrypt)",
		},
		transform: encrypt,
	}
	dec := &sliceKeyOperation{
		BaseOperation: BaseOperation{
			NameValue:        name + "_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: description + " (decrypt)",
		},
		transform: decrypt,
	}
	enc.ReverseOp = dec
	dec.ReverseOp = enc
	return enc, dec
}

func init() {
	pairs := [][2]Operation{}
	add := func(enc, dec Operation) {
		pairs = append(pairs, [2]Operation{enc, dec})
	}

	add(newBytePair("caesar", "Caesar shift of every byte, modulo 256", CaesarEncrypt, CaesarDecrypt))
	add(newBytePair("xor", "XOR of every byte with a single key byte", XOREncrypt, XORDecrypt))
	add(newSlicePair("vigenere", "Vigenere shift with a repeating keyword", VigenereEncrypt, VigenereDecrypt))
	add(newSlicePair("otp", "One-time pad, key must be as long as the data", OneTimePad, OneTimePad))
	// Registry decryption accepts a trailing partial block so that anything cbc_encrypt produced round trips
	add(newSlicePair("cbc", "Chained XOR with the key as initialization vector", CBCEncrypt, CBCDecryptPartial))

	for _, pair := range pairs {
		for _, op := range pair {
			if err := RegisterOperation(op); err != nil {
				panic(fmt.Sprintf("registering %s: %v", op.Name(), err))
			}
		}
	}
}
