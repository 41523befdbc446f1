package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxDepth bounds translation recursion. Catalog schemas are small literal
// trees; anything deeper than this is either generated garbage or a cycle
// smuggled in by hand, and a clear error beats a stack overflow.
const maxDepth = 64

// Translate renders a node tree as a zod schema expression. The output is a
// pure function of the tree: object fields and enum values appear in source
// order, so regenerating from unchanged input produces identical bytes.
//
// Unrecognized shapes degrade to z.any() and never produce an error; the only
// failure mode is exceeding the nesting bound.
func Translate(n *Node) (string, error) {
	return translate(n, 0, 0)
}

// TypeAlias renders the companion type-alias body for a root schema bound to
// identifier (the alias refers to the <identifier>Schema constant).
func TypeAlias(identifier string) string {
	return fmt.Sprintf("z.infer<typeof %sSchema>", identifier)
}

func translate(n *Node, depth, indent int) (string, error) {
	if depth > maxDepth {
		return "", fmt.Errorf("schema nesting exceeds %d levels (cyclic schema?)", maxDepth)
	}
	if n == nil {
		return "z.any()", nil
	}

	switch n.Kind {
	case KindString:
		return translateString(n), nil
	case KindNumber:
		return "z.number()", nil
	case KindInteger:
		return "z.number().int()", nil
	case KindBoolean:
		return "z.boolean()", nil
	case KindNull:
		return "z.null()", nil
	case KindArray:
		inner, err := translate(n.Items, depth+1, indent)
		if err != nil {
			return "", err
		}
		return "z.array(" + inner + ")", nil
	case KindObject:
		return translateObject(n, depth, indent)
	default:
		return "z.any()", nil
	}
}

// translateString emits either a plain string schema or a closed union of the
// enum literals. Order and duplicates pass through untouched — the catalog is
// the source of truth, not this generator.
func translateString(n *Node) string {
	switch len(n.Enum) {
	case 0:
		return "z.string()"
	case 1:
		return "z.literal(" + quote(n.Enum[0]) + ")"
	}
	parts := make([]string, len(n.Enum))
	for i, v := range n.Enum {
		parts[i] = "z.literal(" + quote(v) + ")"
	}
	return "z.union([" + strings.Join(parts, ", ") + "])"
}

func translateObject(n *Node, depth, indent int) (string, error) {
	if len(n.Props) == 0 {
		return "z.object({})", nil
	}

	pad := strings.Repeat("  ", indent+1)
	var b strings.Builder
	b.WriteString("z.object({\n")
	for _, p := range n.Props {
		inner, err := translate(p.Node, depth+1, indent+1)
		if err != nil {
			return "", err
		}
		b.WriteString(pad)
		b.WriteString(fieldKey(p.Name))
		b.WriteString(": ")
		b.WriteString(inner)
		if !n.Required[p.Name] {
			b.WriteString(".optional()")
		}
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("})")
	return b.String(), nil
}

var plainKey = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// fieldKey quotes property names that are not valid TypeScript identifiers.
func fieldKey(name string) string {
	if plainKey.MatchString(name) {
		return name
	}
	return quote(name)
}

func quote(s string) string {
	return strconv.Quote(s)
}
