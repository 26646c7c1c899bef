package crypto

import "github.com/MKhiriev/go-trace-warnings/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// WarningCrypto handles the per-location cryptography of trace warnings.
// It knows nothing about the network or the database: all key material is
// derived from the raw location id, which only devices that checked in at
// the location (and the submitting device) ever see.
//
// Scheme:
//
//	LocationIDHash = SHA-256(locationID)
//	EncKey, MacKey = HKDF-SHA256(locationID, info="trace-warning-encryption"/"trace-warning-mac")
//	MAC            = HMAC-SHA256(MacKey, IV ‖ EncryptedPayload)
//	Payload        = AES-256-CBC(EncKey, IV, PKCS#7(JSON(record)))
type WarningCrypto interface {
	// LocationIDHash returns the digest that identifies a location in
	// published warnings.
	LocationIDHash(locationID []byte) []byte

	// EncryptReport encrypts the timing fields of warning for the location
	// identified by locationID. A fresh random IV is used on every call.
	EncryptReport(locationID []byte, warning models.Warning) (models.EncryptedWarningReport, error)

	// DecryptReport verifies the MAC of report and decrypts it with material
	// derived from locationID. The returned warning carries the report's
	// LocationIDHash. Returns an error if the MAC does not match, the padding
	// is broken or the plaintext cannot be decoded.
	DecryptReport(locationID []byte, report models.EncryptedWarningReport) (models.Warning, error)
}

// PackageVerifier checks the server signature of a downloaded package.
type PackageVerifier interface {
	// Verify reports whether signature is a valid signature of payload.
	Verify(payload, signature []byte) bool
}
