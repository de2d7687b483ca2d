// Package formats adapts each codec to one interface so the CLI can pick
// a codec by name. The codecs themselves do not depend on it.
package formats

import (
	"fmt"
	"sort"
)

type Format interface {
	// Decode turns wire text into a record.
	Decode(text string) (any, error)
	// Record returns an empty record to unmarshal YAML or JSON into.
	Record() any
	// Encode turns a record from Decode or Record back into wire text.
	Encode(record any) (string, error)
}

type Factory func() Format

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string) (Format, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("format '%s' not found", name)
	}
	return factory(), nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ForScheme maps a link scheme to the format that decodes it.
func ForScheme(scheme string) (Format, error) {
	switch scheme {
	case "vmess":
		return Get("vmess")
	case "":
		return nil, fmt.Errorf("link has no scheme")
	}
	// SIP002 puts the cipher in the scheme, so anything else is tried as one.
	return Get("sip002")
}

func recordError(want string, got any) error {
	return fmt.Errorf("expected %s record, got %T", want, got)
}
