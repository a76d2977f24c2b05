package cripta

import (
	"fmt"
)

type stepRoundFunction interface {
	ApplySteps(inputBlock Bits, roundKey Bits) (RoundSteps, error)
}

type FeistelNetwork struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction

	blockBits   int
	roundsCount int

	roundKeys []Bits
	tracer    Tracer
}

func NewFeistelNetwork(
	keyScheduleImpl IKeySchedule,
	roundFunctionImpl IRoundFunction,
	blockBits int,
	roundsCount int,
) (*FeistelNetwork, error) {

	if keyScheduleImpl == nil {
		return nil, fmt.Errorf("key schedule implementation cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}
	if blockBits%2 != 0 {
		return nil, fmt.Errorf("block size must be even for Feistel network")
	}

	fBlockBits := blockBits
	if fBlockBits == 0 {
		fBlockBits = desBlockBits
	}

	fRoundsCount := roundsCount
	if fRoundsCount == 0 {
		fRoundsCount = desRounds
	}

	return &FeistelNetwork{
		keySchedule:   keyScheduleImpl,
		roundFunction: roundFunctionImpl,
		blockBits:     fBlockBits,
		roundsCount:   fRoundsCount,
	}, nil
}

func (fn *FeistelNetwork) GetBlockBits() int {
	return fn.blockBits
}

func (fn *FeistelNetwork) GetRoundsCount() int {
	return fn.roundsCount
}

// SetTracer installs an observer called once per round; nil disables tracing.
func (fn *FeistelNetwork) SetTracer(tracer Tracer) {
	fn.tracer = tracer
}

func (fn *FeistelNetwork) SetKey(key []uint8) error {
	if len(key) == 0 {
		return fmt.Errorf("key cannot be empty: %w", ErrInvalidKeyLength)
	}

	roundKeys, err := fn.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	if len(roundKeys) != fn.roundsCount {
		return fmt.Errorf("key schedule generated %d round keys, need %d: %w",
			len(roundKeys), fn.roundsCount, ErrInvalidKeyLength)
	}

	fn.roundKeys = roundKeys
	return nil
}

// RoundKeys returns a copy of the scheduled subkeys.
func (fn *FeistelNetwork) RoundKeys() []Bits {
	keys := make([]Bits, len(fn.roundKeys))
	for i, k := range fn.roundKeys {
		keys[i] = append(Bits(nil), k...)
	}
	return keys
}

func (fn *FeistelNetwork) EncryptBlock(plainBlock Bits) (Bits, error) {
	if len(fn.roundKeys) == 0 {
		return nil, fmt.Errorf("key not set. Call SetKey() before encryption")
	}
	return fn.Process(plainBlock, fn.roundKeys)
}

func (fn *FeistelNetwork) DecryptBlock(cipherBlock Bits) (Bits, error) {
	if len(fn.roundKeys) == 0 {
		return nil, fmt.Errorf("key not set. Call SetKey() before decryption")
	}
	return fn.Process(cipherBlock, reverseKeys(fn.roundKeys))
}

// Process runs the rounds with roundKeys in the given order and returns
// R‖L, so decryption is Process with the keys reversed.
func (fn *FeistelNetwork) Process(block Bits, roundKeys []Bits) (Bits, error) {
	if len(block) != fn.blockBits {
		return nil, fmt.Errorf("block must be %d bits, got %d: %w",
			fn.blockBits, len(block), ErrInvalidBlockLength)
	}
	if len(roundKeys) != fn.roundsCount {
		return nil, fmt.Errorf("need %d round keys, got %d: %w",
			fn.roundsCount, len(roundKeys), ErrInvalidKeyLength)
	}

	half := fn.blockBits / 2
	left := block[:half]
	right := block[half:]

	for round, roundKey := range roundKeys {
		newLeft, newRight, err := fn.round(round, left, right, roundKey)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		left, right = newLeft, newRight
	}

	return concatBits(right, left), nil
}

func (fn *FeistelNetwork) round(index int, left, right, roundKey Bits) (Bits, Bits, error) {
	var steps RoundSteps
	var output Bits
	var err error

	if sr, ok := fn.roundFunction.(stepRoundFunction); ok && fn.tracer != nil {
		steps, err = sr.ApplySteps(right, roundKey)
		output = steps.Permuted
	} else {
		output, err = fn.roundFunction.Apply(right, roundKey)
	}
	if err != nil {
		return nil, nil, err
	}

	newRight, err := XorBits(left, output)
	if err != nil {
		return nil, nil, fmt.Errorf("xor operation failed: %w", err)
	}
	newLeft := append(Bits(nil), right...)

	if fn.tracer != nil {
		fn.tracer.TraceRound(RoundTrace{
			Round:    index + 1,
			Left:     left,
			Right:    right,
			RoundKey: roundKey,
			Steps:    steps,
			NewLeft:  newLeft,
			NewRight: newRight,
		})
	}

	return newLeft, newRight, nil
}

// Round applies one DES round: newL = R, newR = L xor f(R, K).
func Round(left, right, roundKey Bits) (Bits, Bits, error) {
	if len(left) != desHalfBits {
		return nil, nil, fmt.Errorf("left half must be %d bits, got %d: %w",
			desHalfBits, len(left), ErrInvalidBlockLength)
	}
	return desNetwork.round(0, left, right, roundKey)
}

func reverseKeys(keys []Bits) []Bits {
	reversed := make([]Bits, len(keys))
	for i, k := range keys {
		reversed[len(keys)-1-i] = k
	}
	return reversed
}
