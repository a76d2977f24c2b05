package cripta

import "fmt"

type ChainState int

const (
	ChainAwaitingBlock ChainState = iota
	ChainChaining
	ChainDone
)

func (s ChainState) String() string {
	switch s {
	case ChainAwaitingBlock:
		return "AwaitingBlock"
	case ChainChaining:
		return "Chaining"
	case ChainDone:
		return "Done"
	default:
		return fmt.Sprintf("ChainState(%d)", int(s))
	}
}

// CBCChain links the blocks of one message. It starts with the IV as the
// previous block, moves to Chaining after the first block and rejects input
// once finished. A chain works in one direction only.
type CBCChain struct {
	cipher   ISymmetricCipher
	decrypt  bool
	previous []byte
	state    ChainState
	index    int
	tracer   Tracer
}

func NewCBCEncryptChain(cipher ISymmetricCipher, iv []byte) (*CBCChain, error) {
	return newCBCChain(cipher, iv, false)
}

func NewCBCDecryptChain(cipher ISymmetricCipher, iv []byte) (*CBCChain, error) {
	return newCBCChain(cipher, iv, true)
}

func newCBCChain(cipher ISymmetricCipher, iv []byte, decrypt bool) (*CBCChain, error) {
	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}
	if len(iv) != desBlockSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d: %w", desBlockSize, len(iv), ErrInvalidIVLength)
	}

	return &CBCChain{
		cipher:   cipher,
		decrypt:  decrypt,
		previous: append([]byte(nil), iv...),
		state:    ChainAwaitingBlock,
	}, nil
}

func (c *CBCChain) State() ChainState {
	return c.state
}

func (c *CBCChain) SetTracer(tracer Tracer) {
	c.tracer = tracer
}

// Next processes one block and returns its ciphertext (or plaintext when
// decrypting).
func (c *CBCChain) Next(block []byte) ([]byte, error) {
	if c.state == ChainDone {
		return nil, ErrChainDone
	}
	if len(block) != desBlockSize {
		return nil, fmt.Errorf("block %d is %d bytes: %w", c.index, len(block), ErrInvalidBlockLength)
	}

	var chained, output []byte
	var err error

	if c.decrypt {
		chained, err = c.cipher.DecryptBlock(block)
		if err != nil {
			return nil, fmt.Errorf("CBC decryption failed for block %d: %w", c.index, err)
		}
		output, err = xorBlocks(chained, c.previous)
	} else {
		chained, err = xorBlocks(block, c.previous)
		if err != nil {
			return nil, err
		}
		output, err = c.cipher.EncryptBlock(chained)
		if err != nil {
			return nil, fmt.Errorf("CBC encryption failed for block %d: %w", c.index, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if c.tracer != nil {
		c.tracer.TraceBlock(BlockTrace{
			Index:    c.index,
			Decrypt:  c.decrypt,
			Input:    block,
			Previous: c.previous,
			Chained:  chained,
			Output:   output,
		})
	}

	if c.decrypt {
		c.previous = append([]byte(nil), block...)
	} else {
		c.previous = append([]byte(nil), output...)
	}
	c.state = ChainChaining
	c.index++

	return output, nil
}

// Finish marks the message complete.
func (c *CBCChain) Finish() {
	c.state = ChainDone
	c.previous = nil
}

func xorBlocks(a, b []uint8) ([]uint8, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor of %d and %d bytes: %w", len(a), len(b), ErrLengthMismatch)
	}

	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}
