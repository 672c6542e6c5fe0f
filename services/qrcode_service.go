// services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

// qrEncode is swapped out by tests.
var qrEncode = qrcode.Encode

// MemberQRCode encodes a member id as a PNG QR code for front-desk check-in
// scanning.
func MemberQRCode(memberID string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if memberID == "" {
		return nil, errors.New("member id is empty")
	}
	return qrEncode(memberID, qrcode.Medium, size)
}
