package formats

import (
	"strings"

	"proxyfmt/internal/clash"
)

type clashFormat struct{}

func (clashFormat) Decode(text string) (any, error) {
	var (
		n   clash.Node
		err error
	)
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		n, err = clash.UnmarshalNodeJSON([]byte(text))
	} else {
		n, err = clash.UnmarshalNode([]byte(text))
	}
	if err != nil {
		return nil, err
	}
	return &clash.Proxy{Node: n}, nil
}

func (clashFormat) Record() any { return &clash.Proxy{} }

func (clashFormat) Encode(record any) (string, error) {
	p, ok := record.(*clash.Proxy)
	if !ok {
		return "", recordError("clash", record)
	}
	out, err := clash.MarshalNode(p.Node)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func init() {
	Register("clash", func() Format { return clashFormat{} })
}
