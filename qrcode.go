package flyer

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRPixels is the side length of generated QR images.
const DefaultQRPixels = 1024

// QRCodePNG encodes content as a square PNG QR code of size pixels using the
// medium recovery level.
func QRCodePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr code: empty content")
	}
	if size <= 0 {
		size = DefaultQRPixels
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	return png, nil
}
