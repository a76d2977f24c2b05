package cripta

import "fmt"

const (
	desBlockBits = 64
	desBlockSize = 8
)

var ip = [64]int{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

var fp = [64]int{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

// InitialPermutationTable returns IP.
func InitialPermutationTable() [64]int { return ip }

// FinalPermutationTable returns IP⁻¹.
func FinalPermutationTable() [64]int { return fp }

// desNetwork carries no key and no tracer, so it is safe for concurrent use.
var desNetwork = &FeistelNetwork{
	keySchedule:   &DESKeySchedule{},
	roundFunction: &DESRoundFunction{},
	blockBits:     desBlockBits,
	roundsCount:   desRounds,
}

// EncryptBlock encrypts one 64-bit block with sixteen 48-bit round keys.
func EncryptBlock(block Bits, roundKeys []Bits) (Bits, error) {
	return desCrypt(desNetwork, block, roundKeys)
}

// DecryptBlock inverts EncryptBlock for the same round keys.
func DecryptBlock(block Bits, roundKeys []Bits) (Bits, error) {
	return desCrypt(desNetwork, block, reverseKeys(roundKeys))
}

func desCrypt(fn *FeistelNetwork, block Bits, roundKeys []Bits) (Bits, error) {
	if len(block) != desBlockBits {
		return nil, fmt.Errorf("DES block must be %d bits, got %d: %w",
			desBlockBits, len(block), ErrInvalidBlockLength)
	}
	if len(roundKeys) != desRounds {
		return nil, fmt.Errorf("DES needs %d round keys, got %d: %w",
			desRounds, len(roundKeys), ErrInvalidKeyLength)
	}

	permuted, err := PermuteBits(block, ip[:])
	if err != nil {
		return nil, fmt.Errorf("IP permutation failed: %w", err)
	}

	feistelOutput, err := fn.Process(permuted, roundKeys)
	if err != nil {
		return nil, fmt.Errorf("feistel network failed: %w", err)
	}

	result, err := PermuteBits(feistelOutput, fp[:])
	if err != nil {
		return nil, fmt.Errorf("FP permutation failed: %w", err)
	}

	return result, nil
}

// DESCipher is a keyed DES instance working on 8-byte blocks. It also
// satisfies crypto/cipher.Block.
type DESCipher struct {
	feistel *FeistelNetwork
}

func NewDESCipher() (*DESCipher, error) {
	feistel, err := NewFeistelNetwork(
		&DESKeySchedule{},
		&DESRoundFunction{},
		desBlockBits,
		desRounds,
	)
	if err != nil {
		return nil, err
	}

	return &DESCipher{
		feistel: feistel,
	}, nil
}

// NewKeyedDESCipher returns a DESCipher with the round keys of key scheduled.
func NewKeyedDESCipher(key []byte) (*DESCipher, error) {
	des, err := NewDESCipher()
	if err != nil {
		return nil, err
	}
	if err := des.SetKey(key); err != nil {
		return nil, err
	}
	return des, nil
}

func (des *DESCipher) SetKey(key []uint8) error {
	if len(key) != desKeySize {
		return fmt.Errorf("DES key must be %d bytes (64 bits), got %d: %w",
			desKeySize, len(key), ErrInvalidKeyLength)
	}

	err := des.feistel.SetKey(key)
	if err != nil {
		return fmt.Errorf("failed to set key in feistel network: %w", err)
	}

	return nil
}

// SetTracer forwards round events of this cipher to tracer.
func (des *DESCipher) SetTracer(tracer Tracer) {
	des.feistel.SetTracer(tracer)
}

func (des *DESCipher) Tracer() Tracer {
	return des.feistel.tracer
}

func (des *DESCipher) RoundKeys() []Bits {
	return des.feistel.RoundKeys()
}

func (des *DESCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	return des.cryptBytes(plainBlock, false)
}

func (des *DESCipher) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	return des.cryptBytes(cipherBlock, true)
}

func (des *DESCipher) cryptBytes(block []uint8, decrypt bool) ([]uint8, error) {
	if len(block) != desBlockSize {
		return nil, fmt.Errorf("DES block must be %d bytes (64 bits), got %d: %w",
			desBlockSize, len(block), ErrInvalidBlockLength)
	}

	roundKeys := des.feistel.roundKeys
	if len(roundKeys) == 0 {
		return nil, fmt.Errorf("key not set. Call SetKey() first")
	}
	if decrypt {
		roundKeys = reverseKeys(roundKeys)
	}

	out, err := desCrypt(des.feistel, BytesToBits(block), roundKeys)
	if err != nil {
		return nil, err
	}

	return BitsToBytes(out)
}

func (des *DESCipher) BlockSize() int { return desBlockSize }

// Encrypt implements crypto/cipher.Block and panics on short buffers or a
// missing key, as the standard library ciphers do.
func (des *DESCipher) Encrypt(dst, src []byte) {
	des.cryptInto(dst, src, false)
}

func (des *DESCipher) Decrypt(dst, src []byte) {
	des.cryptInto(dst, src, true)
}

func (des *DESCipher) cryptInto(dst, src []byte, decrypt bool) {
	if len(src) < desBlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < desBlockSize {
		panic("cripta: output not full block")
	}

	out, err := des.cryptBytes(src[:desBlockSize], decrypt)
	if err != nil {
		panic("cripta: " + err.Error())
	}
	copy(dst, out)
}
