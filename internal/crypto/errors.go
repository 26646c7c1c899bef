package crypto

import "errors"

var (
	ErrInvalidMAC          = errors.New("message authentication code mismatch")
	ErrInvalidPadding      = errors.New("invalid padding")
	ErrCiphertextTooShort  = errors.New("ciphertext too short")
	ErrInvalidPublicKey    = errors.New("invalid package signing public key")
	ErrInvalidLocationID   = errors.New("empty location id")
	ErrInvalidInitVector   = errors.New("invalid initialization vector")
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
