// Package catalog defines the Go struct types for the two CMS catalog files
// (content-types.json, sections.json) and provides strict JSON parsing.
package catalog

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// RawSchema holds an embedded JSON-Schema fragment verbatim. The bytes are
// kept raw so the schema package can recover property declaration order.
type RawSchema []byte

// MarshalJSON returns the raw bytes unchanged.
func (r RawSchema) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of the raw bytes.
func (r *RawSchema) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// ContentType is one entry of content-types.json.
type ContentType struct {
	ID                      string      `json:"id,omitempty"`
	Name                    string      `json:"name"`
	ConfigurationSchemaSets []SchemaSet `json:"configurationSchemaSets,omitempty"`
}

// SchemaSet groups related configurations under one content type.
type SchemaSet struct {
	Name           string          `json:"name"`
	Configurations []Configuration `json:"configurations,omitempty"`
}

// Configuration is a single named configuration, optionally carrying a schema.
type Configuration struct {
	Name   string    `json:"name"`
	Schema RawSchema `json:"schema,omitempty"`
}

// Section is one entry of sections.json.
type Section struct {
	Name   string    `json:"name,omitempty"`
	Schema RawSchema `json:"schema,omitempty"`
}

// LoadContentTypesFile reads and parses a content-type catalog file.
func LoadContentTypesFile(path string) ([]ContentType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadContentTypes(f)
}

// LoadContentTypes parses a content-type catalog from an io.Reader.
func LoadContentTypes(r io.Reader) ([]ContentType, error) {
	var types []ContentType
	if err := json.NewDecoder(r).Decode(&types); err != nil {
		return nil, fmt.Errorf("decode content-type catalog: %w", err)
	}
	return types, nil
}

// LoadSectionsFile reads and parses a section catalog file.
func LoadSectionsFile(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadSections(f)
}

// LoadSections parses a section catalog from an io.Reader.
func LoadSections(r io.Reader) ([]Section, error) {
	var sections []Section
	if err := json.NewDecoder(r).Decode(&sections); err != nil {
		return nil, fmt.Errorf("decode section catalog: %w", err)
	}
	return sections, nil
}
