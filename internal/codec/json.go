package codec

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes v compactly in struct field order. HTML characters
// are left unescaped so the output matches other compact encoders
// byte-for-byte.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, Wrap(SerializationError, "", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// RequireKeys fails with MissingField when one of keys is absent from obj
// and with InvalidDocument when it is null. encoding/json would leave
// either case zero-valued.
func RequireKeys(obj map[string]json.RawMessage, keys ...string) error {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			return Errorf(MissingField, "%q", k)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Errorf(InvalidDocument, "invalid type: null for field %q", k)
		}
	}
	return nil
}
