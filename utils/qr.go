package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"

	"github.com/skip2/go-qrcode"
)

const pngDataURLPrefix = "data:image/png;base64,"

// GenerateQRCode tạo QR code và trả về bytes PNG
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	// Tạo buffer
	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GenerateQRCodeDataURL QR dạng data URL để nhúng vào vé/response
func GenerateQRCodeDataURL(content string, size int) (string, error) {
	qrBytes, err := GenerateQRCode(content, size)
	if err != nil {
		return "", err
	}
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(qrBytes), nil
}

// DecodeDataURL nhận "data:<mime>;base64,<data>" hoặc base64 thuần
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty image data")
	}
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ",")
		if idx < 0 || !strings.HasSuffix(s[:idx], ";base64") {
			return nil, errors.New("unsupported data url")
		}
		s = s[idx+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}
