package generate

import (
	"testing"
)

func TestPipelineContentTypes(t *testing.T) {
	sink := newMemSink()
	p := &Pipeline{Sink: sink}
	n, err := p.ContentTypes("../../testdata/valid/content-types.json")
	if err != nil {
		t.Fatalf("ContentTypes: %v", err)
	}
	if n != 3 {
		t.Errorf("unit count = %d, want 3", n)
	}
	if _, ok := sink.files["content-types/PaginaSEOsiteMetadata.ts"]; !ok {
		t.Error("PaginaSEOsiteMetadata.ts not emitted")
	}
	if _, ok := sink.files["content-types/package.json"]; !ok {
		t.Error("package.json not emitted")
	}
}

func TestPipelineSections(t *testing.T) {
	sink := newMemSink()
	p := &Pipeline{Sink: sink}
	n, err := p.Sections("../../testdata/valid/sections.json")
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	// Hero, Section2 (unnamed at index 2), SaoPaulo, SaoPaulo2.
	if n != 4 {
		t.Errorf("unit count = %d, want 4", n)
	}
	if _, ok := sink.files["sections/Section2.ts"]; !ok {
		t.Error("Section2.ts not emitted")
	}
	if _, ok := sink.files["sections/SaoPaulo2.ts"]; !ok {
		t.Error("SaoPaulo2.ts not emitted")
	}
}

// TestPipelineIndependence: a malformed sections.json must not block the
// content-types pipeline; the failed catalog yields zero units and an error.
func TestPipelineIndependence(t *testing.T) {
	sink := newMemSink()
	p := &Pipeline{Sink: sink}

	ctCount, ctErr := p.ContentTypes("../../testdata/valid/content-types.json")
	secCount, secErr := p.Sections("../../testdata/invalid/sections.json")

	if ctErr != nil {
		t.Fatalf("content-types pipeline failed: %v", ctErr)
	}
	if ctCount == 0 {
		t.Error("content-types should generate units despite sections failure")
	}
	if secErr == nil {
		t.Error("sections pipeline should fail on malformed catalog")
	}
	if secCount != 0 {
		t.Errorf("sections unit count = %d, want 0", secCount)
	}
}
