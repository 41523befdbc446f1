package generate

import "github.com/ormasoftchile/cmsgen/pkg/catalog"

// Pipeline runs one catalog end to end: load, walk, emit. The two catalog
// pipelines are independent — a failure in one never blocks the other, so
// the CLI runs them back to back and aggregates the results.
type Pipeline struct {
	Sink           Sink
	Reporter       *Reporter
	PackageVersion string
	ZodVersion     string
}

// ContentTypes regenerates the content-types namespace from the catalog at
// path. Returns the number of units generated.
func (p *Pipeline) ContentTypes(path string) (int, error) {
	types, err := catalog.LoadContentTypesFile(path)
	if err != nil {
		return 0, err
	}
	units := ContentTypeUnits(types, p.Reporter)
	if err := p.emitter().Emit(NamespaceContentTypes, units); err != nil {
		return 0, err
	}
	return len(units), nil
}

// Sections regenerates the sections namespace from the catalog at path.
func (p *Pipeline) Sections(path string) (int, error) {
	sections, err := catalog.LoadSectionsFile(path)
	if err != nil {
		return 0, err
	}
	units := SectionUnits(sections, p.Reporter)
	if err := p.emitter().Emit(NamespaceSections, units); err != nil {
		return 0, err
	}
	return len(units), nil
}

func (p *Pipeline) emitter() *Emitter {
	return &Emitter{
		Sink:           p.Sink,
		PackageVersion: p.PackageVersion,
		ZodVersion:     p.ZodVersion,
	}
}
