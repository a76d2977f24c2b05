package cripta

import (
	"bytes"
	"fmt"
	"math/bits"
)

const (
	desKeySize      = 8
	desRounds       = 16
	desRoundKeyBits = 48
)

type DESKeySchedule struct{}

var pc1 = [56]int{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

var pc2 = [48]int{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var shiftSchedule = [desRounds]int{
	1, 1, 2, 2, 2, 2, 2, 2,
	1, 2, 2, 2, 2, 2, 2, 1,
}

// PC1Table returns the parity-drop permutation (64 -> 56 bits).
func PC1Table() [56]int { return pc1 }

// PC2Table returns the compression permutation (56 -> 48 bits).
func PC2Table() [48]int { return pc2 }

// ShiftSchedule returns the per-round left rotation amounts of the C and D halves.
func ShiftSchedule() [desRounds]int { return shiftSchedule }

// GenerateRoundKeys derives the sixteen 48-bit subkeys from a 64-bit key.
// The low bit of every key byte is a parity bit and does not take part.
func (dks *DESKeySchedule) GenerateRoundKeys(masterKey []uint8) ([]Bits, error) {
	if len(masterKey) != desKeySize {
		return nil, fmt.Errorf("DES key must be %d bytes (64 bits), got %d: %w",
			desKeySize, len(masterKey), ErrInvalidKeyLength)
	}

	permutedKey, err := PermuteBits(BytesToBits(masterKey), pc1[:])
	if err != nil {
		return nil, fmt.Errorf("PC1 permutation failed: %w", err)
	}

	c := permutedKey[:28]
	d := permutedKey[28:]

	roundKeys := make([]Bits, 0, desRounds)
	for round := 0; round < desRounds; round++ {
		c = RotateLeft(c, shiftSchedule[round])
		d = RotateLeft(d, shiftSchedule[round])

		roundKey, err := PermuteBits(concatBits(c, d), pc2[:])
		if err != nil {
			return nil, fmt.Errorf("PC2 permutation failed in round %d: %w", round, err)
		}

		roundKeys = append(roundKeys, roundKey)
	}

	return roundKeys, nil
}

// ScheduleKeys is GenerateRoundKeys of the standard DES schedule.
func ScheduleKeys(masterKey []byte) ([]Bits, error) {
	return (&DESKeySchedule{}).GenerateRoundKeys(masterKey)
}

// CheckParity reports whether every key byte has odd parity.
func CheckParity(key []byte) bool {
	for _, b := range key {
		if bits.OnesCount8(b)%2 == 0 {
			return false
		}
	}
	return true
}

// SetParity returns a copy of key with the low bit of each byte set for odd parity.
func SetParity(key []byte) []byte {
	result := make([]byte, len(key))
	for i, b := range key {
		v := b &^ 1
		if bits.OnesCount8(v)%2 == 0 {
			v |= 1
		}
		result[i] = v
	}
	return result
}

var weakKeys = [][]byte{
	// weak
	{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
	{0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE},
	{0xE0, 0xE0, 0xE0, 0xE0, 0xF1, 0xF1, 0xF1, 0xF1},
	{0x1F, 0x1F, 0x1F, 0x1F, 0x0E, 0x0E, 0x0E, 0x0E},
	// semi-weak pairs
	{0x01, 0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E},
	{0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E, 0x01},
	{0x01, 0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1},
	{0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1, 0x01},
	{0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE},
	{0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01},
	{0x1F, 0xE0, 0x1F, 0xE0, 0x0E, 0xF1, 0x0E, 0xF1},
	{0xE0, 0x1F, 0xE0, 0x1F, 0xF1, 0x0E, 0xF1, 0x0E},
	{0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E, 0xFE},
	{0xFE, 0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E},
	{0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1, 0xFE},
	{0xFE, 0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1},
}

// IsWeakKey reports whether key is one of the DES weak or semi-weak keys,
// ignoring parity bits.
func IsWeakKey(key []byte) bool {
	if len(key) != desKeySize {
		return false
	}

	normalized := SetParity(key)
	for _, weak := range weakKeys {
		if bytes.Equal(normalized, weak) {
			return true
		}
	}
	return false
}
