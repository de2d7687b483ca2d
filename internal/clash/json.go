package clash

import (
	"bytes"
	"encoding/json"

	"proxyfmt/internal/codec"
)

func jsonFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, codec.Wrap(codec.InvalidDocument, "", err)
	}
	if fields == nil {
		return nil, codec.Errorf(codec.InvalidDocument, "expected an object, got null")
	}
	return fields, nil
}

func requireJSON(data []byte, keys ...string) error {
	fields, err := jsonFields(data)
	if err != nil {
		return err
	}
	return codec.RequireKeys(fields, keys...)
}

func (p *Proxy) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data)
	if err != nil {
		return err
	}
	raw, ok := fields["type"]
	if !ok {
		return codec.Errorf(codec.MissingField, "%q", "type")
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return codec.Wrap(codec.InvalidDocument, "type must be a string", err)
	}
	n, err := newNode(tag)
	if err != nil {
		return err
	}
	if err := codec.RequireKeys(fields, requiredFields[tag]...); err != nil {
		return err
	}
	if err := json.Unmarshal(data, n); err != nil {
		return docErr(err)
	}
	p.Node = n
	return nil
}

func (p Proxy) MarshalJSON() ([]byte, error) {
	if p.Node == nil {
		return nil, codec.Errorf(codec.SerializationError, "proxy has no node")
	}
	body, err := codec.MarshalJSON(p.Node)
	if err != nil {
		return nil, err
	}
	tag, err := codec.MarshalJSON(p.Node.Type())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(tag)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func (o *WSOptions) UnmarshalJSON(data []byte) error {
	if err := requireJSON(data, wsRequired...); err != nil {
		return err
	}
	type plain WSOptions
	return json.Unmarshal(data, (*plain)(o))
}

func (o *HTTPOptions) UnmarshalJSON(data []byte) error {
	if err := requireJSON(data, httpRequired...); err != nil {
		return err
	}
	type plain HTTPOptions
	if err := json.Unmarshal(data, (*plain)(o)); err != nil {
		return err
	}
	o.normalize()
	return nil
}

// MarshalJSON writes a nil path or header set as an empty array or
// object, both of which decode back to nil.
func (o HTTPOptions) MarshalJSON() ([]byte, error) {
	type plain HTTPOptions
	if o.Path == nil {
		o.Path = []string{}
	}
	if o.Headers == nil {
		o.Headers = map[string]string{}
	}
	return codec.MarshalJSON(plain(o))
}

func (o *H2Options) UnmarshalJSON(data []byte) error {
	if err := requireJSON(data, h2Required...); err != nil {
		return err
	}
	type plain H2Options
	if err := json.Unmarshal(data, (*plain)(o)); err != nil {
		return err
	}
	o.normalize()
	return nil
}

func (o H2Options) MarshalJSON() ([]byte, error) {
	type plain H2Options
	if o.Headers == nil {
		o.Headers = map[string]string{}
	}
	return codec.MarshalJSON(plain(o))
}

func (n *SSRNode) UnmarshalJSON(data []byte) error {
	if err := requireJSON(data, ssrRequired...); err != nil {
		return err
	}
	type plain SSRNode
	return json.Unmarshal(data, (*plain)(n))
}

// UnmarshalNodeJSON decodes a single JSON node object.
func UnmarshalNodeJSON(data []byte) (Node, error) {
	var p Proxy
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, docErr(err)
	}
	if p.Node == nil {
		return nil, codec.Errorf(codec.InvalidDocument, "expected an object, got null")
	}
	return p.Node, nil
}

func MarshalNodeJSON(n Node) ([]byte, error) {
	return codec.MarshalJSON(Proxy{Node: n})
}
