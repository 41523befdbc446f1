// Package ident turns arbitrary CMS display names into valid TypeScript
// identifiers and tracks already-assigned names per catalog.
package ident

import (
	"strconv"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// digitMarker is prepended when a normalized name would start with a digit.
const digitMarker = "N"

// emptyFallback replaces names that normalize to nothing at all.
const emptyFallback = "Untitled"

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a display name into an identifier containing only ASCII
// letters and digits. Accented characters are decomposed and reduced to their
// base letter ("Página" → "Pagina"); everything else that is not a letter or
// digit is dropped ("Menu-Category" → "MenuCategory"). A leading digit gets a
// marker letter prepended so the result stays a valid identifier.
//
// Normalize is not injective — distinct inputs can produce the same
// identifier. Callers that need uniqueness go through a Registry.
func Normalize(name string) string {
	flat, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Transform errors only on malformed UTF-8; fall back to the raw
		// input and let the ASCII filter below deal with it.
		flat = name
	}

	out := make([]byte, 0, len(flat))
	for _, r := range flat {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, byte(r))
		}
	}

	if len(out) == 0 {
		return emptyFallback
	}
	if out[0] >= '0' && out[0] <= '9' {
		return digitMarker + string(out)
	}
	return string(out)
}

// Registry hands out unique identifiers within one catalog. The first claim
// of a name wins it unchanged; later claims of the same name get a
// deterministic numeric suffix (SaoPaulo, SaoPaulo2, SaoPaulo3, ...).
type Registry struct {
	claimed map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{claimed: make(map[string]int)}
}

// Claim reserves name, disambiguating on collision. The returned identifier
// is unique across all prior Claim calls on this Registry.
func (r *Registry) Claim(name string) string {
	n, ok := r.claimed[name]
	if !ok {
		r.claimed[name] = 1
		return name
	}
	// Suffixed candidates can themselves collide with explicitly claimed
	// names, so probe until a free one is found.
	for {
		n++
		candidate := name + strconv.Itoa(n)
		if _, taken := r.claimed[candidate]; !taken {
			r.claimed[name] = n
			r.claimed[candidate] = 1
			return candidate
		}
	}
}
