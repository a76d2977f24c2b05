package cripta

import "fmt"

// Bits is an ordered sequence of single-bit values, one bit per element.
// Bit 1 of the DES tables is Bits[0].
type Bits []uint8

// PermuteBits builds a new sequence whose i-th bit is input[table[i]-1].
// The table is 1-based and its length defines the output width.
func PermuteBits(input Bits, table []int) (Bits, error) {
	if err := checkBits(input); err != nil {
		return nil, err
	}

	result := make(Bits, len(table))

	for i, pos := range table {
		if pos < 1 || pos > len(input) {
			return nil, fmt.Errorf("table entry %d (position %d) outside [1, %d]: %w",
				i, pos, len(input), ErrInvalidTableIndex)
		}
		result[i] = input[pos-1]
	}

	return result, nil
}

func XorBits(a, b Bits) (Bits, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor of %d and %d bits: %w", len(a), len(b), ErrLengthMismatch)
	}
	if err := checkBits(a); err != nil {
		return nil, err
	}
	if err := checkBits(b); err != nil {
		return nil, err
	}

	result := make(Bits, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}

// BytesToBits expands data most significant bit first.
func BytesToBits(data []byte) Bits {
	result := make(Bits, len(data)*8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			result[i*8+j] = (b >> (7 - j)) & 1
		}
	}
	return result
}

func BitsToBytes(bits Bits) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%d bits: %w", len(bits), ErrInvalidLength)
	}

	result := make([]byte, len(bits)/8)
	for i, bit := range bits {
		result[i/8] |= (bit & 1) << (7 - i%8)
	}
	return result, nil
}

// RotateLeft returns bits cyclically shifted left by n positions. A negative
// n rotates right.
func RotateLeft(bits Bits, n int) Bits {
	result := make(Bits, len(bits))
	if len(bits) == 0 {
		return result
	}

	n = (n%len(bits) + len(bits)) % len(bits)
	copy(result, bits[n:])
	copy(result[len(bits)-n:], bits[:n])
	return result
}

func concatBits(left, right Bits) Bits {
	combined := make(Bits, len(left)+len(right))
	copy(combined, left)
	copy(combined[len(left):], right)
	return combined
}

// checkBits rejects elements other than 0 and 1.
func checkBits(bits Bits) error {
	for i, bit := range bits {
		if bit > 1 {
			return fmt.Errorf("element %d has value %d: %w", i, bit, ErrInvalidLength)
		}
	}
	return nil
}
