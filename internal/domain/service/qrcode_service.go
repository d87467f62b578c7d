package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a QR code image for order pickup.
	GeneratePickupQR(orderID int64) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the order ID.
	ParsePickupQR(qrData string) (int64, error)
}
