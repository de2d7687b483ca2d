// Package vmess reads and writes "vmess://" share links: base64 framed
// JSON whose scalar values are all strings.
package vmess

import (
	"encoding/json"
	"fmt"
	"strings"

	"proxyfmt/internal/codec"
)

const (
	Scheme  = "vmess://"
	Version = "2"
)

// Link is the share-link document. Port and Aid are kept as text, the
// way the format defines them.
type Link struct {
	V    string `json:"v"`
	Ps   string `json:"ps"`   // display name
	Add  string `json:"add"`  // server address
	Port string `json:"port"`
	ID   string `json:"id"`
	Aid  string `json:"aid"`
	Scy  string `json:"scy"`  // security, "none" when absent
	Net  string `json:"net"`  // tcp, kcp, ws, h2, quic, grpc
	Type string `json:"type"` // camouflage type, "none" when absent

	// Host and Path change meaning with Net:
	// ws/h2/http host header and path, quic security and key,
	// kcp seed (path), grpc serviceName (path).
	Host string `json:"host"`
	Path string `json:"path"`
	TLS  string `json:"tls"`

	SNI  *string `json:"sni"`
	ALPN *string `json:"alpn"`
	FP   *string `json:"fp"` // TLS fingerprint
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := codec.RequireKeys(fields, "v", "ps", "add", "port", "id", "aid", "net", "host", "path", "tls"); err != nil {
		return err
	}
	for _, k := range []string{"scy", "type"} {
		if v, ok := fields[k]; ok && string(v) == "null" {
			return fmt.Errorf("invalid type: null for field %q", k)
		}
	}
	type plain Link
	out := plain{Scy: "none", Type: "none"}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = Link(out)
	return nil
}

// ALPNList splits the comma joined alpn field.
func (l Link) ALPNList() []string {
	if l.ALPN == nil || *l.ALPN == "" {
		return nil
	}
	return strings.Split(*l.ALPN, ",")
}

// Decode parses a vmess:// link. Missing scy and type default to "none";
// sni, alpn and fp stay nil unless present.
func Decode(text string) (Link, error) {
	if !strings.HasPrefix(text, Scheme) {
		return Link{}, codec.Errorf(codec.BadScheme, "a VMess link must start with %q", Scheme)
	}
	raw, err := codec.DecodeBase64(strings.TrimPrefix(text, Scheme))
	if err != nil {
		return Link{}, err
	}
	var l Link
	if err := json.Unmarshal(raw, &l); err != nil {
		return Link{}, codec.Document(err)
	}
	return l, nil
}

// Encode writes every field, nil optionals as null, and frames the
// result.
func Encode(l Link) (string, error) {
	raw, err := codec.MarshalJSON(l)
	if err != nil {
		return "", err
	}
	return Scheme + codec.EncodeBase64(raw), nil
}
