package qrcode

import (
	"testing"

	"github.com/Bilal-EZ-ZAIM/devopes/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "medium", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "highest", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, defaultBaseURL, svc.baseURL)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 0,
		ErrorCorrectionLevel: "H",
		BaseURL:              "https://pharmacy.example.com/pharmacies/",
	}}).(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Highest, svc.errorCorrectionLevel)
	assert.Equal(t, "https://pharmacy.example.com/pharmacies", svc.baseURL)

	assert.NotNil(t, NewQRCodeService(nil))
}

func TestQRCodeService_GeneratePharmacyQR(t *testing.T) {
	svc := NewQRCodeService(nil)

	qrBytes, err := svc.GeneratePharmacyQR("6650f1c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePharmacyQR_EmptyID(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.GeneratePharmacyQR("")
	assert.Error(t, err)
}

func TestQRCodeService_GeneratePharmacyQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "")

		qrBytes, err := svc.GeneratePharmacyQR("abc")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParsePharmacyQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://pharmacy.example.com/pharmacies")

	id, err := svc.ParsePharmacyQR(svc.pharmacyURL("6650f1c2a1b2c3d4e5f60718"))
	require.NoError(t, err)
	assert.Equal(t, "6650f1c2a1b2c3d4e5f60718", id)
}

func TestQRCodeService_ParsePharmacyQR_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://pharmacy.example.com/pharmacies")

	tests := []string{
		"https://evil.example.com/pharmacies/1",
		"https://pharmacy.example.com/pharmacies/",
		"https://pharmacy.example.com/pharmacies/1/qrcode",
		"not a url",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := svc.ParsePharmacyQR(data)
			assert.Error(t, err)
		})
	}
}
