// Package index builds and queries the per-sport multi-pattern automaton.
//
// An Index is immutable once built: it is published wholesale into the
// cache and never mutated, so unlimited concurrent queries are safe. Total
// query work is O(|haystack| + matches), independent of dictionary size.
package index

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/albapepper/Scoracle-sub000/internal/catalog"
	"github.com/albapepper/Scoracle-sub000/internal/model"
)

// Index is a built-once automaton over every pattern string of one sport
type Index struct {
	sport    string
	ac       ahocorasick.AhoCorasick
	strings  []string                   // distinct pattern strings, automaton order
	patterns map[string][]model.Pattern // pattern string -> all patterns sharing it
	entities map[model.Ref]model.Entity
	empty    bool
}

// Build compiles the automaton from a compiled catalog. A catalog with no
// usable patterns yields a valid empty index that matches nothing.
func Build(c *catalog.Compiled) *Index {
	ix := &Index{
		sport:    c.Sport,
		patterns: make(map[string][]model.Pattern),
		entities: c.Entities,
	}
	if ix.entities == nil {
		ix.entities = make(map[model.Ref]model.Entity)
	}

	for _, p := range c.Patterns {
		if len(p.Text) < 2 {
			continue
		}
		if _, seen := ix.patterns[p.Text]; !seen {
			ix.strings = append(ix.strings, p.Text)
		}
		// Collisions append, never overwrite: one string may belong to
		// several entities.
		ix.patterns[p.Text] = append(ix.patterns[p.Text], p)
	}

	if len(ix.strings) == 0 {
		ix.empty = true
		return ix
	}

	// StandardMatch is required for overlapping iteration: FindRaw must
	// report every occurrence, nested ones included.
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.StandardMatch,
	})
	ix.ac = builder.Build(ix.strings)

	return ix
}

// Sport returns the sport this index was built for
func (ix *Index) Sport() string {
	return ix.sport
}

// Empty reports whether the index contains no patterns
func (ix *Index) Empty() bool {
	return ix.empty
}

// FindRaw returns every dictionary occurrence in the haystack, including
// overlapping and nested ones. The haystack must already be normalized.
func (ix *Index) FindRaw(haystack string) []model.RawHit {
	if ix.empty || haystack == "" {
		return nil
	}

	var hits []model.RawHit
	iter := ix.ac.IterOverlapping(haystack)
	for m := iter.Next(); m != nil; m = iter.Next() {
		text := ix.strings[m.Pattern()]
		hits = append(hits, model.RawHit{
			Start:   m.Start(),
			End:     m.End(),
			Pattern: text,
			Length:  len(text),
		})
	}
	return hits
}

// Patterns returns every pattern registered for a normalized string
func (ix *Index) Patterns(text string) []model.Pattern {
	return ix.patterns[text]
}

// Entity looks up a catalog entity by ref
func (ix *Index) Entity(ref model.Ref) (model.Entity, bool) {
	e, ok := ix.entities[ref]
	return e, ok
}

// Entities returns the catalog snapshot backing this index
func (ix *Index) Entities() map[model.Ref]model.Entity {
	return ix.entities
}
