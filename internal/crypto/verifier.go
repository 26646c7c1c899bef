package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// ecdsaVerifier checks ASN.1 encoded ECDSA P-256 signatures over the SHA-256
// digest of a package payload.
type ecdsaVerifier struct {
	key *ecdsa.PublicKey
}

// NewPackageVerifier constructs a [PackageVerifier] for key. The key must be
// on the P-256 curve.
func NewPackageVerifier(key *ecdsa.PublicKey) (PackageVerifier, error) {
	if key == nil || key.Curve != elliptic.P256() {
		return nil, ErrInvalidPublicKey
	}
	return &ecdsaVerifier{key: key}, nil
}

// LoadPackageVerifier reads a PEM encoded PKIX public key from path and
// constructs a [PackageVerifier] for it.
func LoadPackageVerifier(path string) (PackageVerifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	key, err := ParsePublicKeyPEM(data)
	if err != nil {
		return nil, err
	}
	return NewPackageVerifier(key)
}

// ParsePublicKeyPEM decodes the first PEM block of data as a PKIX ECDSA
// public key.
func ParsePublicKeyPEM(data []byte) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPublicKey)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ECDSA key", ErrInvalidPublicKey)
	}
	return key, nil
}

// Verify implements [PackageVerifier].
func (v *ecdsaVerifier) Verify(payload, signature []byte) bool {
	if len(signature) == 0 {
		return false
	}
	digest := sha256.Sum256(payload)
	return ecdsa.VerifyASN1(v.key, digest[:], signature)
}
