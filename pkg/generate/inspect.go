package generate

import "regexp"

var indexSchemaExport = regexp.MustCompile(`export \{ (\w+)Schema \}`)

// ListUnits reads a namespace's emitted index back and extracts the
// generated unit identifiers. Best-effort: a missing or unreadable index
// yields nil rather than an error.
func ListUnits(sink Sink, namespace string) []string {
	data, err := sink.ReadFile(namespace + "/index.ts")
	if err != nil {
		return nil
	}
	var names []string
	for _, m := range indexSchemaExport.FindAllSubmatch(data, -1) {
		names = append(names, string(m[1]))
	}
	return names
}

// Status reports whether each namespace has been generated, keyed by
// namespace name. Existence of the package descriptor is the marker.
func Status(sink Sink) map[string]bool {
	return map[string]bool{
		NamespaceContentTypes: sink.Exists(NamespaceContentTypes + "/package.json"),
		NamespaceSections:     sink.Exists(NamespaceSections + "/package.json"),
	}
}
