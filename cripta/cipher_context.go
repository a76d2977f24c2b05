package cripta

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CipherContext runs a block cipher in CBC mode over whole messages.
type CipherContext struct {
	cipher      ISymmetricCipher
	key         []uint8
	paddingMode PaddingMode
	iv          []uint8
	parallel    bool
	tracer      Tracer
}

func NewCipherContext(
	cipher ISymmetricCipher,
	key []uint8,
	paddingMode PaddingMode,
	iv []uint8,
	parallel bool,
) (*CipherContext, error) {

	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}

	ctx := &CipherContext{
		cipher:      cipher,
		paddingMode: paddingMode,
		parallel:    parallel,
	}

	if err := ctx.SetKey(key); err != nil {
		return nil, fmt.Errorf("failed to set key: %w", err)
	}
	if err := ctx.SetIV(iv); err != nil {
		return nil, err
	}

	return ctx, nil
}

func (ctx *CipherContext) Encrypt(plaintext []uint8) ([]uint8, error) {
	padded, err := applyPadding(plaintext, desBlockSize, ctx.paddingMode)
	if err != nil {
		return nil, fmt.Errorf("padding failed: %w", err)
	}

	chain, err := NewCBCEncryptChain(ctx.cipher, ctx.iv)
	if err != nil {
		return nil, err
	}
	chain.SetTracer(ctx.tracer)
	defer chain.Finish()

	ciphertext := make([]uint8, 0, len(padded))
	for i := 0; i < len(padded); i += desBlockSize {
		encryptedBlock, err := chain.Next(padded[i : i+desBlockSize])
		if err != nil {
			return nil, err
		}
		ciphertext = append(ciphertext, encryptedBlock...)
	}

	return ciphertext, nil
}

func (ctx *CipherContext) Decrypt(ciphertext []uint8) ([]uint8, error) {
	if len(ciphertext) == 0 || len(ciphertext)%desBlockSize != 0 {
		return nil, fmt.Errorf("ciphertext of %d bytes is not a positive multiple of %d: %w",
			len(ciphertext), desBlockSize, ErrInvalidCiphertextLength)
	}

	var plaintext []uint8
	var err error

	if ctx.DecryptsInParallel() {
		plaintext, err = ctx.decryptParallel(ciphertext)
	} else {
		plaintext, err = ctx.decryptSequential(ciphertext)
	}
	if err != nil {
		return nil, err
	}

	return removePadding(plaintext, desBlockSize, ctx.paddingMode)
}

func (ctx *CipherContext) decryptSequential(ciphertext []uint8) ([]uint8, error) {
	chain, err := NewCBCDecryptChain(ctx.cipher, ctx.iv)
	if err != nil {
		return nil, err
	}
	chain.SetTracer(ctx.tracer)
	defer chain.Finish()

	plaintext := make([]uint8, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += desBlockSize {
		decryptedBlock, err := chain.Next(ciphertext[i : i+desBlockSize])
		if err != nil {
			return nil, err
		}
		plaintext = append(plaintext, decryptedBlock...)
	}

	return plaintext, nil
}

// decryptParallel splits the blocks between workers. Block i only needs
// ciphertext block i-1 (or the IV), which is known up front.
func (ctx *CipherContext) decryptParallel(ciphertext []uint8) ([]uint8, error) {
	numBlocks := len(ciphertext) / desBlockSize
	plaintext := make([]uint8, len(ciphertext))

	numWorkers := min(runtime.NumCPU(), numBlocks)
	blocksPerWorker := (numBlocks + numWorkers - 1) / numWorkers

	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		startBlock := w * blocksPerWorker
		endBlock := min(startBlock+blocksPerWorker, numBlocks)
		if startBlock >= endBlock {
			break
		}

		g.Go(func() error {
			for i := startBlock; i < endBlock; i++ {
				block := ciphertext[i*desBlockSize : (i+1)*desBlockSize]

				decryptedBlock, err := ctx.cipher.DecryptBlock(block)
				if err != nil {
					return fmt.Errorf("CBC decryption failed for block %d: %w", i, err)
				}

				previous := ctx.iv
				if i > 0 {
					previous = ciphertext[(i-1)*desBlockSize : i*desBlockSize]
				}

				plainBlock, err := xorBlocks(decryptedBlock, previous)
				if err != nil {
					return err
				}
				copy(plaintext[i*desBlockSize:], plainBlock)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plaintext, nil
}

func (ctx *CipherContext) EncryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	encrypted, err := ctx.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, encrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

func (ctx *CipherContext) DecryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	decrypted, err := ctx.Decrypt(data)
	if err != nil {
		return fmt.Errorf("decryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, decrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

func (ctx *CipherContext) SetKey(newKey []uint8) error {
	ctx.key = make([]uint8, len(newKey))
	copy(ctx.key, newKey)
	return ctx.cipher.SetKey(ctx.key)
}

func (ctx *CipherContext) SetIV(newIV []uint8) error {
	if len(newIV) != desBlockSize {
		return fmt.Errorf("IV must be %d bytes, got %d: %w", desBlockSize, len(newIV), ErrInvalidIVLength)
	}
	ctx.iv = make([]uint8, len(newIV))
	copy(ctx.iv, newIV)
	return nil
}

func (ctx *CipherContext) SetPaddingMode(newPaddingMode PaddingMode) {
	ctx.paddingMode = newPaddingMode
}

func (ctx *CipherContext) SetParallel(parallel bool) {
	ctx.parallel = parallel
}

// SetTracer installs an observer for block events and, when the cipher
// supports it, round events.
func (ctx *CipherContext) SetTracer(tracer Tracer) {
	ctx.tracer = tracer
	if tc, ok := ctx.cipher.(interface{ SetTracer(Tracer) }); ok {
		tc.SetTracer(tracer)
	}
}

// DecryptsInParallel reports whether Decrypt will spread blocks across
// workers. Any tracer, on the context or installed on the cipher directly,
// forces sequential decryption so events arrive in block order.
func (ctx *CipherContext) DecryptsInParallel() bool {
	if !ctx.parallel || ctx.tracer != nil {
		return false
	}
	if tc, ok := ctx.cipher.(interface{ Tracer() Tracer }); ok && tc.Tracer() != nil {
		return false
	}
	return true
}

func (ctx *CipherContext) GetPaddingMode() PaddingMode {
	return ctx.paddingMode
}

func (ctx *CipherContext) GetBlockSize() int {
	return desBlockSize
}

// EncryptCBC pads plaintext with PKCS#7 and encrypts it with DES in CBC mode.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	ctx, err := newDESContext(key, iv)
	if err != nil {
		return nil, err
	}
	return ctx.Encrypt(plaintext)
}

// DecryptCBC inverts EncryptCBC.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	ctx, err := newDESContext(key, iv)
	if err != nil {
		return nil, err
	}
	return ctx.Decrypt(ciphertext)
}

func newDESContext(key, iv []byte) (*CipherContext, error) {
	des, err := NewDESCipher()
	if err != nil {
		return nil, err
	}
	return NewCipherContext(des, key, PaddingModePKCS7, iv, false)
}

func GenerateRandomBytes(data []byte) (int, error) {
	return rand.Read(data)
}
