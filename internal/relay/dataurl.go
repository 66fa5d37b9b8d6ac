package relay

import (
	"encoding/base64"
	"errors"
	"strings"
)

const imageDataURLPrefix = "data:image/jpeg;base64,"

var ErrNotDataURL = errors.New("not a base64 jpeg data url")

// EncodeDataURL embeds image bytes inline as a base64 jpeg data URL.
func EncodeDataURL(image []byte) string {
	return imageDataURLPrefix + base64.StdEncoding.EncodeToString(image)
}

// DecodeDataURL reverses EncodeDataURL.
func DecodeDataURL(url string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(url, imageDataURLPrefix)
	if !ok {
		return nil, ErrNotDataURL
	}
	return base64.StdEncoding.DecodeString(encoded)
}
