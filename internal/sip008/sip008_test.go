package sip008

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxyfmt/internal/codec"
)

func ptr(s string) *string { return &s }

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	huge, err := ParseUint128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	return &Document{
		Version: 1,
		Servers: []Server{
			{
				ID: "27b8a625-4f4b-4428-9f0f-8a2317db7c79", Remarks: "Name of the server",
				Server: "example.com", ServerPort: 8388, Password: "example", Method: "chacha20-ietf-poly1305",
				Plugin: ptr("xxx"), PluginOpts: ptr("xxxxx"),
			},
			{
				ID: "7842c068-c667-41f2-8f7d-04feece3cb67", Remarks: "Name of the server",
				Server: "example.com", ServerPort: 8388, Password: "example", Method: "chacha20-ietf-poly1305",
			},
		},
		BytesUsed:      U128(274877906944),
		BytesRemaining: huge,
	}
}

func TestEncode(t *testing.T) {
	doc := &Document{
		Version: 1,
		Servers: []Server{{
			ID: "id", Remarks: "r", Server: "s", ServerPort: 1, Password: "p", Method: "m",
		}},
		BytesUsed:      U128(10),
		BytesRemaining: U128(0),
	}
	out, err := Encode(doc)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":1,"servers":[{"id":"id","remarks":"r","server":"s","server_port":1,"password":"p","method":"m","plugin":null,"plugin_opts":null}],"bytes_used":10,"bytes_remaining":0}`,
		string(raw))
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDocument(t)

	out, err := Encode(doc)
	require.NoError(t, err)
	got, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	again, err := Encode(got)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestDecode(t *testing.T) {
	in := b64(`{
		"version": 1,
		"servers": [
			{"id": "b", "remarks": "second", "server": "2.example.com", "server_port": 443, "password": "p", "method": "aes-256-gcm", "plugin": null},
			{"id": "a", "remarks": "first", "server": "1.example.com", "server_port": 8388, "password": "p", "method": "aes-256-gcm", "plugin": "v2ray-plugin", "plugin_opts": "server", "extra": true}
		],
		"bytes_used": 18446744073709551616,
		"bytes_remaining": 0
	}`)
	doc, err := Decode(in)
	require.NoError(t, err)

	require.Len(t, doc.Servers, 2)
	assert.Equal(t, "b", doc.Servers[0].ID)
	assert.Equal(t, "a", doc.Servers[1].ID)
	assert.Nil(t, doc.Servers[0].Plugin)
	assert.Nil(t, doc.Servers[0].PluginOpts)
	assert.Equal(t, ptr("v2ray-plugin"), doc.Servers[1].Plugin)
	assert.Equal(t, Uint128{Hi: 1}, doc.BytesUsed)
	assert.Equal(t, Uint128{}, doc.BytesRemaining)
}

func TestDecodeInvalidBase64(t *testing.T) {
	for _, in := range []string{"not base64!", "eyJ2ZXJzaW9uIjoxfQ", "eyJ2ZXJzaW9uIjoxfQ-="} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, codec.ErrInvalidBase64, in)
	}
}

func TestDecodeInvalidDocument(t *testing.T) {
	tests := map[string]string{
		"not json":          `servers: []`,
		"missing total":     `{"version":1,"servers":[],"bytes_used":0}`,
		"missing server id": `{"version":1,"servers":[{"remarks":"r","server":"s","server_port":1,"password":"p","method":"m"}],"bytes_used":0,"bytes_remaining":0}`,
		"null servers":      `{"version":1,"servers":null,"bytes_used":0,"bytes_remaining":0}`,
		"negative total":    `{"version":1,"servers":[],"bytes_used":-1,"bytes_remaining":0}`,
		"fractional total":  `{"version":1,"servers":[],"bytes_used":1.5,"bytes_remaining":0}`,
		"total over 128bit": `{"version":1,"servers":[],"bytes_used":340282366920938463463374607431768211456,"bytes_remaining":0}`,
		"quoted total":      `{"version":1,"servers":[],"bytes_used":"1","bytes_remaining":0}`,
		"version overflow":  `{"version":256,"servers":[],"bytes_used":0,"bytes_remaining":0}`,
		"port as string":    `{"version":1,"servers":[{"id":"i","remarks":"r","server":"s","server_port":"1","password":"p","method":"m"}],"bytes_used":0,"bytes_remaining":0}`,
		"top level null":    `null`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(b64(in))
			require.Error(t, err)
			assert.Equal(t, codec.InvalidDocument, codec.KindOf(err))
		})
	}
}

func TestDecodeMissingFieldDiagnostic(t *testing.T) {
	_, err := Decode(b64(`{"version":1,"servers":[],"bytes_used":0}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrMissingField)
	assert.Contains(t, err.Error(), `"bytes_remaining"`)
}

func TestEncodeNilServers(t *testing.T) {
	out, err := Encode(&Document{Version: 1})
	require.NoError(t, err)
	doc, err := Decode(out)
	require.NoError(t, err)
	assert.Empty(t, doc.Servers)

	_, err = Encode(nil)
	assert.ErrorIs(t, err, codec.ErrSerializationError)
}
