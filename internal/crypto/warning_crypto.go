// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-trace-warnings/models"
	"golang.org/x/crypto/hkdf"
)

const (
	encryptionKeyInfo = "trace-warning-encryption"
	macKeyInfo        = "trace-warning-mac"
	keyLen            = 32
)

// reportRecord is the plaintext carried inside an encrypted report.
type reportRecord struct {
	StartIntervalNumber   int64 `json:"start_interval_number"`
	Period                int64 `json:"period"`
	TransmissionRiskLevel int   `json:"transmission_risk_level"`
}

// warningCrypto is the private implementation of [WarningCrypto].
type warningCrypto struct {
	random io.Reader
}

// NewWarningCrypto constructs a [WarningCrypto] that draws IVs from the OS
// CSPRNG.
func NewWarningCrypto() WarningCrypto {
	return &warningCrypto{random: rand.Reader}
}

// LocationIDHash implements [WarningCrypto].
func (w *warningCrypto) LocationIDHash(locationID []byte) []byte {
	sum := sha256.Sum256(locationID)
	return sum[:]
}

// EncryptReport implements [WarningCrypto].
func (w *warningCrypto) EncryptReport(locationID []byte, warning models.Warning) (models.EncryptedWarningReport, error) {
	encKey, macKey, err := deriveKeys(locationID)
	if err != nil {
		return models.EncryptedWarningReport{}, err
	}

	plaintext, err := json.Marshal(reportRecord{
		StartIntervalNumber:   warning.StartIntervalNumber,
		Period:                warning.Period,
		TransmissionRiskLevel: warning.TransmissionRiskLevel,
	})
	if err != nil {
		return models.EncryptedWarningReport{}, fmt.Errorf("marshal record: %w", err)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return models.EncryptedWarningReport{}, fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err = io.ReadFull(w.random, iv); err != nil {
		return models.EncryptedWarningReport{}, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return models.EncryptedWarningReport{
		LocationIDHash:            w.LocationIDHash(locationID),
		EncryptedPayload:          ciphertext,
		InitializationVector:      iv,
		MessageAuthenticationCode: computeMAC(macKey, iv, ciphertext),
	}, nil
}

// DecryptReport implements [WarningCrypto]. The MAC is checked before any
// decryption takes place.
func (w *warningCrypto) DecryptReport(locationID []byte, report models.EncryptedWarningReport) (models.Warning, error) {
	encKey, macKey, err := deriveKeys(locationID)
	if err != nil {
		return models.Warning{}, err
	}

	expected := computeMAC(macKey, report.InitializationVector, report.EncryptedPayload)
	if !hmac.Equal(expected, report.MessageAuthenticationCode) {
		return models.Warning{}, ErrInvalidMAC
	}

	if len(report.InitializationVector) != aes.BlockSize {
		return models.Warning{}, ErrInvalidInitVector
	}
	if len(report.EncryptedPayload) == 0 || len(report.EncryptedPayload)%aes.BlockSize != 0 {
		return models.Warning{}, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return models.Warning{}, fmt.Errorf("create cipher: %w", err)
	}

	padded := make([]byte, len(report.EncryptedPayload))
	cipher.NewCBCDecrypter(block, report.InitializationVector).CryptBlocks(padded, report.EncryptedPayload)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return models.Warning{}, err
	}

	var record reportRecord
	if err = json.Unmarshal(plaintext, &record); err != nil {
		return models.Warning{}, fmt.Errorf("unmarshal record: %w", err)
	}

	return models.Warning{
		LocationIDHash:        report.LocationIDHash,
		StartIntervalNumber:   record.StartIntervalNumber,
		Period:                record.Period,
		TransmissionRiskLevel: record.TransmissionRiskLevel,
	}, nil
}

func deriveKeys(locationID []byte) (encKey, macKey []byte, err error) {
	if len(locationID) == 0 {
		return nil, nil, ErrInvalidLocationID
	}

	encKey = make([]byte, keyLen)
	if _, err = io.ReadFull(hkdf.New(sha256.New, locationID, nil, []byte(encryptionKeyInfo)), encKey); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	macKey = make([]byte, keyLen)
	if _, err = io.ReadFull(hkdf.New(sha256.New, locationID, nil, []byte(macKeyInfo)), macKey); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	return encKey, macKey, nil
}

func computeMAC(macKey, iv, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
