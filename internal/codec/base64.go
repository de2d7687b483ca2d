package codec

import (
	"encoding/base64"
)

// DecodeBase64 decodes standard-alphabet, padded base64. Unlike the
// lenient decoders used for scraped subscriptions, nothing is repaired:
// missing padding, URL-safe characters and non-zero trailing bits are
// rejected.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, Wrap(InvalidBase64, "", err)
	}
	return b, nil
}

func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
