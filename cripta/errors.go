package cripta

import "errors"

var (
	ErrInvalidKeyLength        = errors.New("invalid key length")
	ErrInvalidBlockLength      = errors.New("invalid block length")
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length")
	ErrInvalidPadding          = errors.New("invalid padding")
	ErrLengthMismatch          = errors.New("length mismatch")
	ErrInvalidTableIndex       = errors.New("invalid table index")
	ErrInvalidLength           = errors.New("bit length is not a multiple of 8")
	ErrInvalidIVLength         = errors.New("invalid IV length")
	ErrChainDone               = errors.New("chain already finished")
)
