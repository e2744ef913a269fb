// Package normalize canonicalizes entity names and article text so that
// pattern compilation and document scanning agree byte-for-byte.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes and drops combining marks (Mbappé -> Mbappe)
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Generational suffixes that are never usable as a last name on their own
var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
}

// Normalize transforms text into the canonical matchable form: accents
// stripped, lowercased, every rune outside [a-z0-9 ] replaced with a space,
// whitespace collapsed, trimmed. Idempotent.
func Normalize(s string) string {
	stripped, _, err := transform.String(stripAccents, s)
	if err != nil {
		stripped = s
	}

	var out strings.Builder
	out.Grow(len(stripped))

	for _, r := range stripped {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
		} else {
			out.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(out.String()), " ")
}

// ExtractLastName returns the last-name token of a display name, or false
// when the name yields no usable one. Single-word names are rejected (too
// ambiguous), generational suffixes are skipped when enough tokens remain,
// and tokens shorter than 4 characters are rejected.
func ExtractLastName(name string) (string, bool) {
	tokens := strings.Fields(Normalize(name))
	if len(tokens) <= 1 {
		return "", false
	}

	last := tokens[len(tokens)-1]
	if nameSuffixes[last] && len(tokens) >= 3 {
		last = tokens[len(tokens)-2]
	}

	if len(last) < 4 {
		return "", false
	}
	return last, true
}
