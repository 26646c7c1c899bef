package crypto

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/MKhiriev/go-trace-warnings/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocationID = []byte("location-id-0123456789abcdef")

func TestLocationIDHash_IsSHA256(t *testing.T) {
	c := NewWarningCrypto()
	want := sha256.Sum256(testLocationID)
	assert.Equal(t, want[:], c.LocationIDHash(testLocationID))
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewWarningCrypto()
	w := models.Warning{StartIntervalNumber: 2_700_000, Period: 6, TransmissionRiskLevel: 4}

	report, err := c.EncryptReport(testLocationID, w)
	require.NoError(t, err)
	assert.Equal(t, c.LocationIDHash(testLocationID), report.LocationIDHash)
	assert.Len(t, report.InitializationVector, 16)
	assert.Len(t, report.MessageAuthenticationCode, 32)

	got, err := c.DecryptReport(testLocationID, report)
	require.NoError(t, err)
	assert.Equal(t, w.StartIntervalNumber, got.StartIntervalNumber)
	assert.Equal(t, w.Period, got.Period)
	assert.Equal(t, w.TransmissionRiskLevel, got.TransmissionRiskLevel)
	assert.Equal(t, report.LocationIDHash, got.LocationIDHash)
}

func TestEncryptReport_FreshIVEachCall(t *testing.T) {
	c := NewWarningCrypto()
	w := models.Warning{StartIntervalNumber: 1, Period: 1, TransmissionRiskLevel: 1}

	a, err := c.EncryptReport(testLocationID, w)
	require.NoError(t, err)
	b, err := c.EncryptReport(testLocationID, w)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(a.InitializationVector, b.InitializationVector))
	assert.False(t, bytes.Equal(a.EncryptedPayload, b.EncryptedPayload))
}

func TestDecryptReport_Failures(t *testing.T) {
	c := NewWarningCrypto()
	report, err := c.EncryptReport(testLocationID, models.Warning{StartIntervalNumber: 10, Period: 2, TransmissionRiskLevel: 5})
	require.NoError(t, err)

	tests := []struct {
		name       string
		locationID []byte
		mutate     func(r *models.EncryptedWarningReport)
		wantErr    error
	}{
		{
			name:       "wrong location id",
			locationID: []byte("another-location"),
			mutate:     func(*models.EncryptedWarningReport) {},
			wantErr:    ErrInvalidMAC,
		},
		{
			name:       "tampered payload",
			locationID: testLocationID,
			mutate: func(r *models.EncryptedWarningReport) {
				r.EncryptedPayload = append([]byte(nil), r.EncryptedPayload...)
				r.EncryptedPayload[0] ^= 0xff
			},
			wantErr: ErrInvalidMAC,
		},
		{
			name:       "tampered iv",
			locationID: testLocationID,
			mutate: func(r *models.EncryptedWarningReport) {
				r.InitializationVector = append([]byte(nil), r.InitializationVector...)
				r.InitializationVector[3] ^= 0x01
			},
			wantErr: ErrInvalidMAC,
		},
		{
			name:       "empty mac",
			locationID: testLocationID,
			mutate:     func(r *models.EncryptedWarningReport) { r.MessageAuthenticationCode = nil },
			wantErr:    ErrInvalidMAC,
		},
		{
			name:       "empty location id",
			locationID: nil,
			mutate:     func(*models.EncryptedWarningReport) {},
			wantErr:    ErrInvalidLocationID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := report
			tt.mutate(&r)
			_, err := c.DecryptReport(tt.locationID, r)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPKCS7(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31} {
		data := bytes.Repeat([]byte{'a'}, n)
		padded := pkcs7Pad(append([]byte(nil), data...), 16)
		require.Zero(t, len(padded)%16)
		got, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}

	_, err := pkcs7Unpad(bytes.Repeat([]byte{0}, 16), 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	bad := append(bytes.Repeat([]byte{'a'}, 14), 1, 2)
	_, err = pkcs7Unpad(bad, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}
