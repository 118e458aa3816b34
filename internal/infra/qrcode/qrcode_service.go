package qrcode

import (
	"net/url"
	"strings"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080/pharmacies"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode configuration section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "", defaultBaseURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "m", "medium":
		return qrcode.Medium
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePharmacyQR encodes the public pharmacy URL as a PNG QR code.
func (s *qrcodeService) GeneratePharmacyQR(pharmacyID string) ([]byte, error) {
	if pharmacyID == "" {
		return nil, errors.New("pharmacy ID is required")
	}

	qrCode, err := qrcode.New(s.pharmacyURL(pharmacyID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePharmacyQR extracts the pharmacy ID from scanned QR content.
func (s *qrcodeService) ParsePharmacyQR(qrData string) (string, error) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(qrData, prefix) {
		return "", errors.Errorf("QR code does not point to a pharmacy: %s", qrData)
	}

	id, err := url.PathUnescape(strings.TrimPrefix(qrData, prefix))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode pharmacy ID")
	}
	if id == "" || strings.Contains(id, "/") {
		return "", errors.Errorf("invalid pharmacy ID in QR code: %q", id)
	}

	return id, nil
}

func (s *qrcodeService) pharmacyURL(pharmacyID string) string {
	return s.baseURL + "/" + url.PathEscape(pharmacyID)
}
