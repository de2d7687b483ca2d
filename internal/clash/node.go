package clash

import (
	"proxyfmt/internal/codec"
)

// Node is one member of the Proxy union: *SSNode, *TUICNode or *VMessNode.
type Node interface {
	Type() string
	isNode()
}

const (
	TypeSS    = "ss"
	TypeTUIC  = "tuic"
	TypeVMess = "vmess"
)

func (SSNode) Type() string    { return TypeSS }
func (TUICNode) Type() string  { return TypeTUIC }
func (VMessNode) Type() string { return TypeVMess }

func (SSNode) isNode()    {}
func (TUICNode) isNode()  {}
func (VMessNode) isNode() {}

// requiredFields lists the keys each variant cannot decode without.
var requiredFields = map[string][]string{
	TypeSS:    {"name", "server", "port", "password", "cipher"},
	TypeTUIC:  {"name", "server", "port", "password", "uuid"},
	TypeVMess: {"name", "server", "port", "uuid", "alterId", "cipher"},
}

var (
	wsRequired   = []string{"path"}
	httpRequired = []string{"method", "path", "headers"}
	h2Required   = []string{"path", "host", "headers"}
	ssrRequired  = []string{"name", "server", "port", "password", "cipher", "obfs", "protocol"}
)

func newNode(tag string) (Node, error) {
	switch tag {
	case TypeSS:
		return &SSNode{}, nil
	case TypeTUIC:
		return &TUICNode{}, nil
	case TypeVMess:
		return &VMessNode{}, nil
	}
	return nil, codec.Errorf(codec.UnknownVariant, "unknown variant %q, expected one of %q, %q, %q", tag, TypeSS, TypeTUIC, TypeVMess)
}

// Proxy wraps a Node so a heterogeneous list can be decoded from a single
// document; the "type" key selects the variant.
type Proxy struct {
	Node Node
}

// Document is the proxies section of a Clash configuration file. Other
// top-level keys are ignored on decode.
type Document struct {
	Proxies []Proxy `yaml:"proxies" json:"proxies"`
}

func docErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*codec.Error); ok {
		return err
	}
	return codec.Wrap(codec.InvalidDocument, "", err)
}
