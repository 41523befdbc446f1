package catalog

import (
	"strings"
	"testing"
)

func TestLoadContentTypesFile(t *testing.T) {
	types, err := LoadContentTypesFile("../../testdata/valid/content-types.json")
	if err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("got %d content types, want 3", len(types))
	}
	if types[0].Name != "Pagina" {
		t.Errorf("name = %q, want Pagina", types[0].Name)
	}
	sets := types[0].ConfigurationSchemaSets
	if len(sets) != 2 {
		t.Fatalf("got %d schema sets, want 2", len(sets))
	}
	cfgs := sets[0].Configurations
	if len(cfgs) != 3 {
		t.Fatalf("got %d configurations, want 3", len(cfgs))
	}
	if len(cfgs[0].Schema) == 0 {
		t.Error("siteMetadata schema is empty")
	}
	if len(cfgs[2].Schema) != 0 {
		t.Error("noSchemaHere should carry no schema")
	}
	if len(types[2].ConfigurationSchemaSets) != 0 {
		t.Error("NoSets should have no schema sets")
	}
}

func TestLoadSectionsFile(t *testing.T) {
	sections, err := LoadSectionsFile("../../testdata/valid/sections.json")
	if err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}
	if sections[1].Name != "NavBar" || len(sections[1].Schema) != 0 {
		t.Errorf("sections[1] = %+v, want NavBar without schema", sections[1])
	}
	if sections[2].Name != "" || len(sections[2].Schema) == 0 {
		t.Errorf("sections[2] should be unnamed but carry a schema")
	}
}

func TestLoadMalformedCatalogs(t *testing.T) {
	if _, err := LoadContentTypesFile("../../testdata/invalid/content-types.json"); err == nil {
		t.Error("expected error for malformed content-types.json")
	}
	if _, err := LoadSectionsFile("../../testdata/invalid/sections.json"); err == nil {
		t.Error("expected error for malformed sections.json")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadContentTypesFile("../../testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open catalog") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsTypeMismatch(t *testing.T) {
	// Top-level object instead of array.
	_, err := LoadSections(strings.NewReader(`{"name": "not-an-array"}`))
	if err == nil {
		t.Fatal("expected error for non-array catalog")
	}
}

func TestRawSchemaRoundTrip(t *testing.T) {
	var r RawSchema
	in := []byte(`{"type":"object","properties":{"b":1,"a":2}}`)
	if err := r.UnmarshalJSON(in); err != nil {
		t.Fatal(err)
	}
	out, err := r.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != string(in) {
		t.Errorf("raw bytes changed: %s", out)
	}
}
