package utils

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode encodes content as a size x size PNG.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
