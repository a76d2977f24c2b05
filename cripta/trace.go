package cripta

// RoundTrace describes one Feistel round. Steps is zero unless the round
// function exposes its intermediate stages (DESRoundFunction does).
type RoundTrace struct {
	Round    int
	Left     Bits
	Right    Bits
	RoundKey Bits
	Steps    RoundSteps
	NewLeft  Bits
	NewRight Bits
}

// BlockTrace describes one CBC block. Chained is the block cipher input on
// encryption (plaintext xor previous) and the block cipher output on
// decryption (before the xor with the previous ciphertext).
type BlockTrace struct {
	Index    int
	Decrypt  bool
	Input    []byte
	Previous []byte
	Chained  []byte
	Output   []byte
}

// Tracer observes cipher progress. Implementations must not retain or modify
// the slices they receive after returning.
type Tracer interface {
	TraceBlock(BlockTrace)
	TraceRound(RoundTrace)
}
