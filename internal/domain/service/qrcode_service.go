package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateOrderQR generates a QR code pointing at the order confirmation
	GenerateOrderQR(orderID string) ([]byte, error)
}
