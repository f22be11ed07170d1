// Package qr renders employee badge QR codes as PNG images.
package qr

import (
	"github.com/skip2/go-qrcode"
)

// Badge images are printed and scanned from a distance, so they are
// generated large with the highest error-correction level.
const badgeSize = 600

// GenerateBadge encodes content into a PNG suitable for a printed badge.
func GenerateBadge(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.High, badgeSize)
}
