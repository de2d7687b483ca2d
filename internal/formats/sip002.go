package formats

import (
	"strings"

	"proxyfmt/internal/sip002"
)

type sip002Format struct{}

func (sip002Format) Decode(text string) (any, error) {
	u, err := sip002.Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (sip002Format) Record() any { return &sip002.URI{} }

func (sip002Format) Encode(record any) (string, error) {
	u, ok := record.(*sip002.URI)
	if !ok {
		return "", recordError("sip002", record)
	}
	return u.String(), nil
}

func init() {
	Register("sip002", func() Format { return sip002Format{} })
}
