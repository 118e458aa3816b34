package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePharmacyQR generates a PNG QR code linking to the pharmacy page
	GeneratePharmacyQR(pharmacyID string) ([]byte, error)

	// ParsePharmacyQR parses QR code content and returns the pharmacy ID
	ParsePharmacyQR(qrData string) (string, error)
}
