package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const dataURIPrefix = "data:"

// EncodeDataURI wraps binary image data into the inline representation the
// Draft carries between steps.
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("%s%s;base64,%s", dataURIPrefix, mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI converts an inline-encoded image back into its MIME type and
// binary payload. It is the only place the inline representation is parsed.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, fmt.Errorf("decodeDataURI: not a data uri")
	}

	rest := strings.TrimPrefix(uri, dataURIPrefix)
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, fmt.Errorf("decodeDataURI: missing payload separator")
	}

	meta := rest[:sep]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("decodeDataURI: unsupported encoding: %s", meta)
	}
	mimeType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(rest[sep+1:])
	if err != nil {
		return "", nil, fmt.Errorf("decodeDataURI: error decoding payload: %w", err)
	}

	return mimeType, data, nil
}

// IsDataURI reports whether a draft field holds an inline-encoded image.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}
