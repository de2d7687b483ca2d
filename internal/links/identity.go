package links

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"proxyfmt/internal/clash"
	"proxyfmt/internal/sip002"
	"proxyfmt/internal/vmess"
)

// Identity hashes the endpoint and credentials of a decoded record, so
// the same server shared under two display names collapses to one entry.
// Display names never contribute.
func Identity(record any) (string, error) {
	var parts []string

	switch r := record.(type) {
	case sip002.URI:
		parts = []string{"ss", strings.ToLower(r.Host), r.Port, strings.ToLower(r.Method), r.UserPassword, deref(r.Plugin), deref(r.PluginOpts)}
	case *sip002.URI:
		return Identity(*r)
	case vmess.Link:
		// "none" and empty mean the same thing for camouflage.
		header := strings.ToLower(r.Type)
		if header == "none" {
			header = ""
		}
		net := strings.ToLower(r.Net)
		if net == "" {
			net = "tcp"
		}
		parts = []string{"vmess", strings.ToLower(r.Add), r.Port, r.ID, r.Aid, strings.ToLower(r.Scy), net, header, r.Host, r.Path, r.TLS}
	case *vmess.Link:
		return Identity(*r)
	case *clash.SSNode:
		parts = []string{clash.TypeSS, strings.ToLower(r.Server), fmt.Sprint(r.Port), r.Password, strings.ToLower(r.Cipher), deref(r.Plugin), deref(r.PluginOpts)}
	case *clash.TUICNode:
		parts = []string{clash.TypeTUIC, strings.ToLower(r.Server), fmt.Sprint(r.Port), r.Password, r.UUID}
	case *clash.VMessNode:
		parts = []string{clash.TypeVMess, strings.ToLower(r.Server), fmt.Sprint(r.Port), r.UUID, fmt.Sprint(r.AlterID), strings.ToLower(r.Cipher), deref(r.Network), deref(r.TLS)}
	case clash.Proxy:
		return Identity(r.Node)
	case *clash.Proxy:
		return Identity(r.Node)
	default:
		return "", fmt.Errorf("no identity for %T", record)
	}

	signature := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(signature))
	return hex.EncodeToString(hash[:]), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
