package formats

import (
	"strings"

	"proxyfmt/internal/vmess"
)

type vmessFormat struct{}

func (vmessFormat) Decode(text string) (any, error) {
	l, err := vmess.Decode(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (vmessFormat) Record() any { return &vmess.Link{} }

func (vmessFormat) Encode(record any) (string, error) {
	l, ok := record.(*vmess.Link)
	if !ok {
		return "", recordError("vmess", record)
	}
	return vmess.Encode(*l)
}

func init() {
	Register("vmess", func() Format { return vmessFormat{} })
}
