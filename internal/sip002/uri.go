// Package sip002 reads and writes Shadowsocks SIP002 share URIs.
package sip002

import (
	"fmt"
	"net/url"
	"strings"

	"proxyfmt/internal/codec"
)

// URI is one decoded share link. Port stays textual so non-canonical
// forms such as leading zeros survive a round trip.
//
// PluginOpts is always non-nil after Parse, pointing at "" when the query
// had nothing besides plugin. A nil PluginOpts only occurs on records
// built by hand.
type URI struct {
	Method       string  `yaml:"method" json:"method"`
	UserPassword string  `yaml:"user_password" json:"user_password"`
	Host         string  `yaml:"host" json:"host"`
	Port         string  `yaml:"port" json:"port"`
	Plugin       *string `yaml:"plugin" json:"plugin"`
	PluginOpts   *string `yaml:"plugin_opts" json:"plugin_opts"`
	NodeName     string  `yaml:"node_name" json:"node_name"`
}

// Parse decodes text whose scheme is the cipher method. Both the
// "method://" form and the bare "method:" form written by String are
// accepted.
func Parse(text string) (URI, error) {
	scheme, rest, ok := strings.Cut(text, ":")
	if !ok || !validScheme(scheme) {
		return URI{}, codec.Errorf(codec.MalformedURI, "parse url failed: missing or invalid scheme")
	}
	rest = strings.TrimPrefix(rest, "//")

	u, err := url.Parse(scheme + "://" + rest)
	if err != nil {
		return URI{}, codec.Wrap(codec.MalformedURI, "parse url failed", err)
	}

	authority := rest
	if i := strings.IndexAny(authority, "/?#"); i >= 0 {
		authority = authority[:i]
	}
	userinfo, hostport := "", authority
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		userinfo, hostport = authority[:i], authority[i+1:]
	}

	if u.Hostname() == "" {
		return URI{}, codec.Errorf(codec.MissingHost, "host is required")
	}
	port := u.Port()
	if port == "" {
		return URI{}, codec.Errorf(codec.MissingPort, "port is required")
	}
	host := strings.TrimSuffix(hostport, ":"+port)

	plugin, opts := splitQuery(u.RawQuery)

	return URI{
		Method:       strings.ToLower(scheme),
		UserPassword: userinfo,
		Host:         host,
		Port:         port,
		Plugin:       plugin,
		PluginOpts:   &opts,
		NodeName:     u.Fragment,
	}, nil
}

// String formats u with a fixed template. Values are written as-is;
// escaping reserved characters is up to the caller.
func (u URI) String() string {
	return fmt.Sprintf("%s:%s@%s:%s?plugin=%s&%s#%s",
		u.Method,
		u.UserPassword,
		u.Host,
		u.Port,
		deref(u.Plugin),
		deref(u.PluginOpts),
		u.NodeName,
	)
}

// splitQuery walks the query in source order. The first plugin value is
// returned separately; every other pair is re-joined as key=value.
func splitQuery(raw string) (*string, string) {
	var (
		plugin *string
		opts   []string
	)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k, v = unescape(k), unescape(v)
		if k == "plugin" {
			if plugin == nil {
				plugin = &v
			}
			continue
		}
		opts = append(opts, k+"="+v)
	}
	return plugin, strings.Join(opts, "&")
}

// unescape applies form decoding and keeps the raw text when it contains
// an invalid escape.
func unescape(s string) string {
	if d, err := url.QueryUnescape(s); err == nil {
		return d
	}
	return strings.ReplaceAll(s, "+", " ")
}

func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
