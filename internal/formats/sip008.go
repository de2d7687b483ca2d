package formats

import (
	"strings"

	"proxyfmt/internal/sip008"
)

type sip008Format struct{}

func (sip008Format) Decode(text string) (any, error) {
	return sip008.Decode(strings.TrimSpace(text))
}

func (sip008Format) Record() any { return &sip008.Document{} }

func (sip008Format) Encode(record any) (string, error) {
	d, ok := record.(*sip008.Document)
	if !ok {
		return "", recordError("sip008", record)
	}
	return sip008.Encode(d)
}

func init() {
	Register("sip008", func() Format { return sip008Format{} })
}
