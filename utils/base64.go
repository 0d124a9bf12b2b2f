// utils/base64.go
package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

const MaxImageBytes = 5 * 1024 * 1024

// DecodeImage accepts a data URL ("data:image/png;base64,...") or bare base64
// and returns the raw bytes and content type.
func DecodeImage(s string) ([]byte, string, error) {
	contentType := ""
	payload := s
	if strings.HasPrefix(s, "data:") {
		head, body, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(head, ";base64") {
			return nil, "", errors.New("invalid data url")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
		if !strings.HasPrefix(contentType, "image/") {
			return nil, "", errors.New("content type must be image/*")
		}
		payload = body
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.New("invalid base64 image data")
	}
	if len(data) > MaxImageBytes {
		return nil, "", errors.New("image size exceeds 5MB limit")
	}
	return data, contentType, nil
}
