package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema reflects a RawSchema field as a plain object. The embedded
// fragment's own validity is the CMS's concern, not this generator's.
func (RawSchema) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

// ExportContentTypesSchema produces a JSON Schema Draft 2020-12 document
// describing the content-types.json catalog file.
func ExportContentTypesSchema() ([]byte, error) {
	return exportCatalogSchema(&ContentType{},
		"https://github.com/ormasoftchile/cmsgen/schemas/content-types.json",
		"CMS Content-Type Catalog",
		"Schema for content-types.json catalog files")
}

// ExportSectionsSchema produces a JSON Schema Draft 2020-12 document
// describing the sections.json catalog file.
func ExportSectionsSchema() ([]byte, error) {
	return exportCatalogSchema(&Section{},
		"https://github.com/ormasoftchile/cmsgen/schemas/sections.json",
		"CMS Section Catalog",
		"Schema for sections.json catalog files")
}

// exportCatalogSchema reflects the element struct and wraps it in an array
// schema, since both catalogs are top-level JSON arrays.
func exportCatalogSchema(element any, id, title, description string) ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(element)
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal element schema: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal element schema: %w", err)
	}

	wrapped := map[string]any{
		"$schema":     doc["$schema"],
		"$id":         id,
		"title":       title,
		"description": description,
		"type":        "array",
		"items":       map[string]any{"$ref": doc["$ref"]},
		"$defs":       doc["$defs"],
	}

	out, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	return out, nil
}
