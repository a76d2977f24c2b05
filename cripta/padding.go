package cripta

import (
	"crypto/rand"
	"fmt"
)

// PaddingMode selects how a message is extended to a whole number of
// blocks. Every mode adds between 1 and blockSize bytes, so a message that
// is already aligned gains a full block and the padding is always removable.
type PaddingMode int

const (
	// PaddingModePKCS7 fills with n bytes of value n.
	PaddingModePKCS7 PaddingMode = iota
	// PaddingModeANSIX923 fills with zeros and a final length byte.
	PaddingModeANSIX923
	// PaddingModeISO10126 fills with random bytes and a final length byte.
	PaddingModeISO10126
)

func (pm PaddingMode) String() string {
	switch pm {
	case PaddingModePKCS7:
		return "PKCS7"
	case PaddingModeANSIX923:
		return "ANSIX923"
	case PaddingModeISO10126:
		return "ISO10126"
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(pm))
	}
}

func applyPadding(data []uint8, blockSize int, mode PaddingMode) ([]uint8, error) {
	dataLength := len(data)
	paddingLength := blockSize - (dataLength % blockSize)

	padded := make([]uint8, dataLength+paddingLength)
	copy(padded, data)

	switch mode {
	case PaddingModePKCS7:
		for i := dataLength; i < len(padded); i++ {
			padded[i] = uint8(paddingLength)
		}

	case PaddingModeANSIX923:
		padded[len(padded)-1] = uint8(paddingLength)

	case PaddingModeISO10126:
		if paddingLength > 1 {
			if _, err := rand.Read(padded[dataLength : len(padded)-1]); err != nil {
				return nil, fmt.Errorf("failed to generate random bytes: %w", err)
			}
		}
		padded[len(padded)-1] = uint8(paddingLength)

	default:
		return nil, fmt.Errorf("unsupported padding mode %v", mode)
	}

	return padded, nil
}

// removePadding checks and strips the trailing padding. The checks are not
// constant time.
func removePadding(data []uint8, blockSize int, mode PaddingMode) ([]uint8, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("padded data of %d bytes: %w", len(data), ErrInvalidPadding)
	}

	paddingLength := int(data[len(data)-1])
	if paddingLength < 1 || paddingLength > blockSize {
		return nil, fmt.Errorf("padding length %d outside [1, %d]: %w",
			paddingLength, blockSize, ErrInvalidPadding)
	}

	body := len(data) - paddingLength

	switch mode {
	case PaddingModePKCS7:
		for i := body; i < len(data); i++ {
			if data[i] != uint8(paddingLength) {
				return nil, fmt.Errorf("byte %d is %#x, want %#x: %w",
					i, data[i], paddingLength, ErrInvalidPadding)
			}
		}

	case PaddingModeANSIX923:
		for i := body; i < len(data)-1; i++ {
			if data[i] != 0 {
				return nil, fmt.Errorf("byte %d is %#x, want 0: %w", i, data[i], ErrInvalidPadding)
			}
		}

	case PaddingModeISO10126:

	default:
		return nil, fmt.Errorf("unsupported padding mode %v", mode)
	}

	return data[:body], nil
}
