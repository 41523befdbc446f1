package generate

import (
	"reflect"
	"testing"
)

func TestListUnitsRoundTrip(t *testing.T) {
	sink := newMemSink()
	if err := (&Emitter{Sink: sink}).Emit(NamespaceSections, sampleUnits()); err != nil {
		t.Fatal(err)
	}
	got := ListUnits(sink, NamespaceSections)
	want := []string{"Hero", "Footer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListUnits = %v, want %v", got, want)
	}
}

func TestListUnitsMissingIndex(t *testing.T) {
	if got := ListUnits(newMemSink(), NamespaceSections); got != nil {
		t.Errorf("ListUnits on empty sink = %v, want nil", got)
	}
}

func TestStatus(t *testing.T) {
	sink := newMemSink()
	if err := (&Emitter{Sink: sink}).Emit(NamespaceContentTypes, nil); err != nil {
		t.Fatal(err)
	}
	got := Status(sink)
	if !got[NamespaceContentTypes] {
		t.Error("content-types should be reported generated")
	}
	if got[NamespaceSections] {
		t.Error("sections should not be reported generated")
	}
}
