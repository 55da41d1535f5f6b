package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateCardQR encodes the card URL as a PNG image
	GenerateCardQR(cardURL string) ([]byte, error)
}
