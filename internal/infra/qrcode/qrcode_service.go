// Package qrcode generates order confirmation QR codes.
package qrcode

import (
	"strings"

	"neocart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateOrderQR generates a QR code pointing at the order confirmation
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}

	png, err := qrcode.Encode(s.baseURL+"/orders/"+orderID, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order QR code")
	}

	return png, nil
}
