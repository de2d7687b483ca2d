// Package sip008 reads and writes SIP008 subscription documents framed
// in base64.
package sip008

import (
	"encoding/json"
	"errors"

	"proxyfmt/internal/codec"
)

type Document struct {
	Version        uint8    `json:"version" yaml:"version"`
	Servers        []Server `json:"servers" yaml:"servers"`
	BytesUsed      Uint128  `json:"bytes_used" yaml:"bytes_used"`
	BytesRemaining Uint128  `json:"bytes_remaining" yaml:"bytes_remaining"`
}

type Server struct {
	ID         string  `json:"id" yaml:"id"`
	Remarks    string  `json:"remarks" yaml:"remarks"`
	Server     string  `json:"server" yaml:"server"`
	ServerPort uint16  `json:"server_port" yaml:"server_port"`
	Password   string  `json:"password" yaml:"password"`
	Method     string  `json:"method" yaml:"method"`
	Plugin     *string `json:"plugin" yaml:"plugin"`
	PluginOpts *string `json:"plugin_opts" yaml:"plugin_opts"`
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if err := requireObject(data, "version", "servers", "bytes_used", "bytes_remaining"); err != nil {
		return err
	}
	type plain Document
	return json.Unmarshal(data, (*plain)(d))
}

func (s *Server) UnmarshalJSON(data []byte) error {
	if err := requireObject(data, "id", "remarks", "server", "server_port", "password", "method"); err != nil {
		return err
	}
	type plain Server
	return json.Unmarshal(data, (*plain)(s))
}

func requireObject(data []byte, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("invalid type: null, expected an object")
	}
	return codec.RequireKeys(fields, keys...)
}

// Decode unframes and parses a subscription. Only the shape is checked;
// zero counters or empty server lists are accepted.
func Decode(text string) (*Document, error) {
	raw, err := codec.DecodeBase64(text)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, codec.Document(err)
	}
	return &doc, nil
}

// Encode serializes doc in field order and frames it in padded standard
// base64.
func Encode(doc *Document) (string, error) {
	if doc == nil {
		return "", codec.Errorf(codec.SerializationError, "nil document")
	}
	out := *doc
	if out.Servers == nil {
		// servers is not nullable on the wire.
		out.Servers = []Server{}
	}
	raw, err := codec.MarshalJSON(&out)
	if err != nil {
		return "", err
	}
	return codec.EncodeBase64(raw), nil
}
