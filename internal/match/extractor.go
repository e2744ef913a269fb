// Package match turns raw automaton hits into disambiguated entity
// matches for one text. Everything here is a pure function of
// (text, index): no hidden state, deterministic output.
package match

import (
	"sort"

	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/normalize"
)

// candidate is one raw hit expanded to a single owning pattern
type candidate struct {
	pattern model.Pattern
	start   int
	end     int
}

// Extract finds all disambiguated entity matches in free-form text.
// Empty or whitespace-only input yields an empty result, not an error.
func Extract(ix *index.Index, text string) []model.MatchedEntity {
	haystack := normalize.Normalize(text)
	if haystack == "" {
		return nil
	}

	var candidates []candidate
	for _, hit := range ix.FindRaw(haystack) {
		if !BoundaryOK(haystack, hit.Start, hit.End) {
			continue
		}
		for _, p := range ix.Patterns(hit.Pattern) {
			candidates = append(candidates, candidate{pattern: p, start: hit.Start, end: hit.End})
		}
	}

	return disambiguate(ix, resolveOverlaps(candidates))
}

// BoundaryOK reports whether a hit stands on clean word boundaries,
// rejecting hits glued to adjacent alphanumerics, so "ham" never matches
// inside "birmingham".
func BoundaryOK(haystack string, start, end int) bool {
	if start > 0 && isAlnum(haystack[start-1]) {
		return false
	}
	if end < len(haystack) && isAlnum(haystack[end]) {
		return false
	}
	return true
}

// isAlnum works on bytes: normalized text is pure [a-z0-9 ]
func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// resolveOverlaps drops a candidate only when it is fully contained in an
// already-accepted candidate of a different entity at least as long.
// Same-entity hits are all retained; the disambiguator dedupes by entity.
func resolveOverlaps(candidates []candidate) []candidate {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.start != b.start {
			return a.start < b.start
		}
		la, lb := a.end-a.start, b.end-b.start
		if la != lb {
			return la > lb
		}
		// Equal spans: fixed entity order keeps the walk deterministic.
		return a.pattern.Entity.Less(b.pattern.Entity)
	})

	var accepted []candidate
	for _, c := range candidates {
		suppressed := false
		for _, acc := range accepted {
			if acc.pattern.Entity == c.pattern.Entity {
				continue
			}
			if acc.start <= c.start && c.end <= acc.end && acc.pattern.Length >= c.pattern.Length {
				suppressed = true
				break
			}
		}
		if !suppressed {
			accepted = append(accepted, c)
		}
	}
	return accepted
}
