package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Defaults for the emitted package descriptors.
const (
	DefaultPackageVersion = "1.0.0"
	DefaultZodVersion     = "^3.23.8"
)

// Emitter writes one namespace's generated files through a Sink. Every run
// is a full regeneration: identical units always produce identical bytes.
type Emitter struct {
	Sink           Sink
	PackageVersion string // defaults to DefaultPackageVersion
	ZodVersion     string // defaults to DefaultZodVersion
}

// packageDescriptor is the package.json payload for one namespace.
type packageDescriptor struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Types        string            `json:"types"`
	Dependencies map[string]string `json:"dependencies"`
}

// Emit writes the unit files, the aggregating index pair and the package
// descriptor for one namespace. Creating the namespace directory is
// idempotent; emitting over a previous run simply overwrites it.
func (e *Emitter) Emit(namespace string, units []Unit) error {
	if err := e.Sink.MkdirAll(namespace); err != nil {
		return err
	}

	for _, u := range units {
		path := namespace + "/" + u.Identifier + ".ts"
		if err := e.Sink.WriteFile(path, []byte(unitFile(u))); err != nil {
			return err
		}
	}

	index := indexFile(units)
	if err := e.Sink.WriteFile(namespace+"/index.ts", []byte(index)); err != nil {
		return err
	}
	if err := e.Sink.WriteFile(namespace+"/index.d.ts", []byte(index)); err != nil {
		return err
	}

	pkg, err := e.packageJSON(namespace)
	if err != nil {
		return err
	}
	return e.Sink.WriteFile(namespace+"/package.json", pkg)
}

// unitFile renders one generated .ts source file.
func unitFile(u Unit) string {
	var b strings.Builder
	b.WriteString("import { z } from \"zod\";\n\n")

	if u.Title != "" || u.Description != "" {
		b.WriteString("/**\n")
		if u.Title != "" {
			docLines(&b, u.Title)
		}
		if u.Title != "" && u.Description != "" {
			b.WriteString(" *\n")
		}
		if u.Description != "" {
			docLines(&b, u.Description)
		}
		b.WriteString(" */\n")
	}

	fmt.Fprintf(&b, "export const %sSchema = %s;\n\n", u.Identifier, u.SchemaExpr)
	fmt.Fprintf(&b, "export type %sType = %s;\n", u.Identifier, u.TypeAlias)
	return b.String()
}

func docLines(b *strings.Builder, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// indexFile renders the aggregating index: the zod surface re-export plus
// every unit's schema and type bindings, in generation order.
func indexFile(units []Unit) string {
	var b strings.Builder
	b.WriteString("export * from \"zod\";\n")
	if len(units) > 0 {
		b.WriteString("\n")
	}
	for _, u := range units {
		fmt.Fprintf(&b, "export { %sSchema } from \"./%s\";\n", u.Identifier, u.Identifier)
		fmt.Fprintf(&b, "export type { %sType } from \"./%s\";\n", u.Identifier, u.Identifier)
	}
	return b.String()
}

func (e *Emitter) packageJSON(namespace string) ([]byte, error) {
	version := e.PackageVersion
	if version == "" {
		version = DefaultPackageVersion
	}
	zod := e.ZodVersion
	if zod == "" {
		zod = DefaultZodVersion
	}
	desc := packageDescriptor{
		Name:         Scope + "/" + namespace,
		Version:      version,
		Main:         "index.ts",
		Types:        "index.d.ts",
		Dependencies: map[string]string{"zod": zod},
	}
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal package.json: %w", err)
	}
	return append(data, '\n'), nil
}
