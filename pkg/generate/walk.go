package generate

import (
	"fmt"

	"github.com/ormasoftchile/cmsgen/pkg/catalog"
	"github.com/ormasoftchile/cmsgen/pkg/ident"
	"github.com/ormasoftchile/cmsgen/pkg/schema"
)

// ContentTypeUnits walks a content-type catalog and produces one Unit per
// configuration that carries a schema. Records missing their nested
// collections or schema are skipped silently — a sparse catalog is normal,
// not an error. Identifiers concatenate the three raw display names and
// normalize the joined string once, so the digit-prefix rule applies at the
// join point only.
func ContentTypeUnits(types []catalog.ContentType, rep *Reporter) []Unit {
	reg := ident.NewRegistry()
	var units []Unit
	for _, ct := range types {
		for _, set := range ct.ConfigurationSchemaSets {
			for _, cfg := range set.Configurations {
				if len(cfg.Schema) == 0 {
					continue
				}
				name := ident.Normalize(ct.Name + set.Name + cfg.Name)
				unit, ok := buildUnit(name, cfg.Schema, reg, rep)
				if !ok {
					continue
				}
				units = append(units, unit)
				rep.Progressf("  ✓ %s", unit.Identifier)
			}
		}
	}
	return units
}

// SectionUnits walks a section catalog and produces one Unit per section that
// carries a schema. Unnamed sections fall back to a positional placeholder
// ("Section" + index).
func SectionUnits(sections []catalog.Section, rep *Reporter) []Unit {
	reg := ident.NewRegistry()
	var units []Unit
	for i, s := range sections {
		if len(s.Schema) == 0 {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Section%d", i)
		}
		unit, ok := buildUnit(ident.Normalize(name), s.Schema, reg, rep)
		if !ok {
			continue
		}
		units = append(units, unit)
		rep.Progressf("  ✓ %s", unit.Identifier)
	}
	return units
}

// buildUnit translates one schema under a normalized name, claiming the
// identifier only after translation succeeds. A translation failure (depth
// bound) is reported and the unit skipped; the walk continues.
func buildUnit(name string, raw catalog.RawSchema, reg *ident.Registry, rep *Reporter) (Unit, bool) {
	node := schema.Parse(raw)
	expr, err := schema.Translate(node)
	if err != nil {
		rep.Warnf("%s: %v", name, err)
		return Unit{}, false
	}
	id := reg.Claim(name)
	return Unit{
		Identifier:  id,
		SchemaExpr:  expr,
		TypeAlias:   schema.TypeAlias(id),
		Title:       node.Title,
		Description: node.Description,
	}, true
}
