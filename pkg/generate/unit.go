// Package generate walks the CMS catalogs, turns every embedded schema into a
// generation unit, and emits the @cms-types TypeScript packages.
package generate

import (
	"fmt"
	"io"
)

// Output namespaces under the @cms-types scope.
const (
	NamespaceContentTypes = "content-types"
	NamespaceSections     = "sections"
)

// Scope is the npm scope the generated packages live under.
const Scope = "@cms-types"

// Unit is the result of translating one discovered schema: a unique
// identifier plus the generated zod expression and type-alias bodies.
// Units are created once per walk and never mutated afterwards.
type Unit struct {
	Identifier  string
	SchemaExpr  string
	TypeAlias   string
	Title       string
	Description string
}

// Reporter carries the console sinks for human-readable progress text.
// Progress output is fire-and-forget and not contract-bearing; tests pass
// io.Discard writers to keep the core silent.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// Progressf writes one progress line to the out sink.
func (r *Reporter) Progressf(format string, args ...any) {
	if r != nil && r.Out != nil {
		fmt.Fprintf(r.Out, format+"\n", args...)
	}
}

// Warnf writes one warning line to the err sink.
func (r *Reporter) Warnf(format string, args ...any) {
	if r != nil && r.Err != nil {
		fmt.Fprintf(r.Err, "  ⚠ "+format+"\n", args...)
	}
}
