package cripta

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=cripta

type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint8) ([]Bits, error)
}

type IRoundFunction interface {
	Apply(inputBlock Bits, roundKey Bits) (Bits, error)
}

type ISymmetricCipher interface {
	SetKey(key []uint8) error
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
