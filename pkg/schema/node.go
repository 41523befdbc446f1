// Package schema parses embedded JSON-Schema fragments into a closed, typed
// tree and translates that tree into zod schema expressions.
//
// Parsing happens once at the catalog boundary so the translator dispatches
// over a tagged variant instead of probing loose JSON maps.
package schema

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

// Kind discriminates the schema node variants. Unrecognized or missing type
// declarations map to KindUnknown.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNull    Kind = "null"
	KindUnknown Kind = "unknown"
)

// Node is one schema tree node. Which fields are meaningful is fully
// determined by Kind: Enum for strings, Items for arrays, Props and Required
// for objects. Title and Description feed generated doc comments only.
type Node struct {
	Kind        Kind
	Enum        []string
	Items       *Node
	Props       []Prop
	Required    map[string]bool
	Title       string
	Description string
}

// Prop is a named object property. Props is a slice, not a map: the source
// declaration order leaks into generated output and must be reproducible.
type Prop struct {
	Name string
	Node *Node
}

// rawNode is the loose decode target for one schema node. Unknown fields are
// ignored; properties stay raw so key order can be recovered separately.
type rawNode struct {
	Type        any             `json:"type"`
	Enum        []any           `json:"enum"`
	Items       json.RawMessage `json:"items"`
	Properties  json.RawMessage `json:"properties"`
	Required    []string        `json:"required"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

// Parse decodes a JSON-Schema fragment into a Node. Parse never fails:
// malformed or unrecognized input degrades to a KindUnknown node, which
// translates to the accept-anything schema.
func Parse(data []byte) *Node {
	var raw rawNode
	if len(data) == 0 || json.Unmarshal(data, &raw) != nil {
		return &Node{Kind: KindUnknown}
	}
	return fromRaw(&raw)
}

func fromRaw(raw *rawNode) *Node {
	n := &Node{
		Kind:        classify(raw.Type),
		Title:       raw.Title,
		Description: raw.Description,
	}

	switch n.Kind {
	case KindString:
		for _, v := range raw.Enum {
			if s, ok := v.(string); ok {
				n.Enum = append(n.Enum, s)
			}
		}
	case KindArray:
		if len(raw.Items) > 0 {
			n.Items = Parse(raw.Items)
		}
	case KindObject:
		n.Props = parseProps(raw.Properties)
		n.Required = make(map[string]bool, len(raw.Required))
		for _, f := range raw.Required {
			n.Required[f] = true
		}
	}
	return n
}

// classify maps the JSON-Schema type declaration to a Kind. Anything that is
// not a recognized type string (missing field, type arrays, junk) is unknown.
func classify(typ any) Kind {
	s, ok := typ.(string)
	if !ok {
		return KindUnknown
	}
	switch k := Kind(s); k {
	case KindString, KindNumber, KindInteger, KindBoolean, KindArray, KindObject, KindNull:
		return k
	}
	return KindUnknown
}

// parseProps decodes a properties object keeping source key order. The values
// come from a regular map decode; the order comes from a token-level scan of
// the same bytes.
func parseProps(raw json.RawMessage) []Prop {
	if len(raw) == 0 {
		return nil
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	var props []Prop
	seen := make(map[string]bool, len(values))
	for _, key := range propertyOrder(raw) {
		if seen[key] {
			continue // duplicate key, last decoded value already won
		}
		seen[key] = true
		props = append(props, Prop{Name: key, Node: Parse(values[key])})
	}
	return props
}

// propertyOrder returns the top-level keys of a JSON object in declaration
// order. Returns nil when the input is not an object.
func propertyOrder(raw []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return keys
		}
	}
}

// skipValue consumes one complete JSON value from the token stream.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil // scalar
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
