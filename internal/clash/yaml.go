package clash

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"proxyfmt/internal/codec"
)

// yamlFields indexes the keys of a mapping node. Merge keys are expanded;
// keys written in the mapping itself take precedence over merged ones.
func yamlFields(value *yaml.Node) (map[string]*yaml.Node, error) {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return nil, codec.Errorf(codec.InvalidDocument, "expected a mapping (line %d)", value.Line)
	}
	fields := make(map[string]*yaml.Node, len(value.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, value.Content[i+1])
			continue
		}
		if _, dup := fields[k.Value]; !dup {
			fields[k.Value] = value.Content[i+1]
		}
	}
	for _, m := range merges {
		sources := []*yaml.Node{m}
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		}
		for _, src := range sources {
			merged, err := yamlFields(src)
			if err != nil {
				return nil, codec.Errorf(codec.InvalidDocument, "merge value must be a mapping (line %d)", src.Line)
			}
			for k, v := range merged {
				if _, ok := fields[k]; !ok {
					fields[k] = v
				}
			}
		}
	}
	return fields, nil
}

func requireYAML(value *yaml.Node, keys ...string) error {
	fields, err := yamlFields(value)
	if err != nil {
		return err
	}
	for _, k := range keys {
		v, ok := fields[k]
		if !ok {
			return codec.Errorf(codec.MissingField, "%q (line %d)", k, value.Line)
		}
		if v.ShortTag() == "!!null" {
			return codec.Errorf(codec.InvalidDocument, "invalid type: null for field %q (line %d)", k, v.Line)
		}
	}
	return nil
}

func (p *Proxy) UnmarshalYAML(value *yaml.Node) error {
	fields, err := yamlFields(value)
	if err != nil {
		return err
	}
	tag, ok := fields["type"]
	if !ok {
		return codec.Errorf(codec.MissingField, "%q (line %d)", "type", value.Line)
	}
	if tag.Kind != yaml.ScalarNode || tag.ShortTag() != "!!str" {
		return codec.Errorf(codec.InvalidDocument, "type must be a string (line %d)", tag.Line)
	}
	n, err := newNode(tag.Value)
	if err != nil {
		return err
	}
	if err := requireYAML(value, requiredFields[tag.Value]...); err != nil {
		return err
	}
	if err := value.Decode(n); err != nil {
		return docErr(err)
	}
	p.Node = n
	return nil
}

func (p Proxy) MarshalYAML() (any, error) {
	if p.Node == nil {
		return nil, codec.Errorf(codec.SerializationError, "proxy has no node")
	}
	var n yaml.Node
	if err := n.Encode(p.Node); err != nil {
		return nil, codec.Wrap(codec.SerializationError, "", err)
	}
	n.Content = append([]*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Node.Type()},
	}, n.Content...)
	return &n, nil
}

func (o *WSOptions) UnmarshalYAML(value *yaml.Node) error {
	if err := requireYAML(value, wsRequired...); err != nil {
		return err
	}
	type plain WSOptions
	return value.Decode((*plain)(o))
}

func (o *HTTPOptions) UnmarshalYAML(value *yaml.Node) error {
	if err := requireYAML(value, httpRequired...); err != nil {
		return err
	}
	type plain HTTPOptions
	if err := value.Decode((*plain)(o)); err != nil {
		return err
	}
	o.normalize()
	return nil
}

func (o *H2Options) UnmarshalYAML(value *yaml.Node) error {
	if err := requireYAML(value, h2Required...); err != nil {
		return err
	}
	type plain H2Options
	if err := value.Decode((*plain)(o)); err != nil {
		return err
	}
	o.normalize()
	return nil
}

func (n *SSRNode) UnmarshalYAML(value *yaml.Node) error {
	if err := requireYAML(value, ssrRequired...); err != nil {
		return err
	}
	type plain SSRNode
	return value.Decode((*plain)(n))
}

// UnmarshalNode decodes a single YAML node mapping.
func UnmarshalNode(data []byte) (Node, error) {
	var p Proxy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, docErr(err)
	}
	if p.Node == nil {
		return nil, codec.Errorf(codec.InvalidDocument, "empty document")
	}
	return p.Node, nil
}

// MarshalNode encodes n as a YAML mapping with the type key first.
func MarshalNode(n Node) ([]byte, error) {
	out, err := yaml.Marshal(Proxy{Node: n})
	if err != nil {
		return nil, docErr(err)
	}
	return out, nil
}

// UnmarshalSSR decodes a standalone ShadowsocksR node.
func UnmarshalSSR(data []byte) (*SSRNode, error) {
	var n SSRNode
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, docErr(err)
	}
	return &n, nil
}

// ParseDocument reads the proxies list out of a Clash configuration.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, docErr(err)
	}
	return &doc, nil
}

func (d *Document) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal proxies: %w", docErr(err))
	}
	return out, nil
}
