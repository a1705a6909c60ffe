package service

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

func QRCodePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// QRCodeBase64 is the PNG encoded for embedding in JSON and data URIs.
func QRCodeBase64(content string, size int) (string, error) {
	png, err := QRCodePNG(content, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
