package match

import (
	"sort"

	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/model"
)

// entityEvidence accumulates what one entity matched on within a text
type entityEvidence struct {
	ref             model.Ref
	patternTypes    map[model.PatternType]bool
	positions       map[int]bool
	requiresContext bool
	contextTeamID   *int
}

// disambiguate groups surviving candidates by entity and assigns
// confidence. Teams are never ambiguous. A player matched only through a
// common last name needs its home team matched at high confidence in the
// same text; an uncorroborated hit is dropped outright, not downgraded.
func disambiguate(ix *index.Index, survivors []candidate) []model.MatchedEntity {
	byEntity := make(map[model.Ref]*entityEvidence)
	for _, c := range survivors {
		ev, ok := byEntity[c.pattern.Entity]
		if !ok {
			ev = &entityEvidence{
				ref:           c.pattern.Entity,
				patternTypes:  make(map[model.PatternType]bool),
				positions:     make(map[int]bool),
				contextTeamID: c.pattern.ContextTeamID,
			}
			byEntity[c.pattern.Entity] = ev
		}
		ev.patternTypes[c.pattern.Type] = true
		ev.positions[c.start] = true
		if c.pattern.Type == model.PatternLastName && c.pattern.RequiresContext {
			ev.requiresContext = true
		}
	}

	// Teams first: their refs corroborate ambiguous player surnames.
	highTeams := make(map[int]bool)
	for ref := range byEntity {
		if ref.Type == model.EntityTeam {
			highTeams[ref.ID] = true
		}
	}

	var out []model.MatchedEntity
	for ref, ev := range byEntity {
		confidence, keep := resolveConfidence(ref, ev, highTeams)
		if !keep {
			continue
		}

		entity, _ := ix.Entity(ref)
		out = append(out, model.MatchedEntity{
			Entity:        ref,
			CanonicalName: entity.CanonicalName,
			Confidence:    confidence,
			Patterns:      sortedTypes(ev.patternTypes),
			Positions:     sortedPositions(ev.positions),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Entity.Less(out[j].Entity)
	})
	return out
}

func resolveConfidence(ref model.Ref, ev *entityEvidence, highTeams map[int]bool) (model.Confidence, bool) {
	if ref.Type == model.EntityTeam {
		return model.ConfidenceHigh, true
	}
	if ev.patternTypes[model.PatternFullName] {
		return model.ConfidenceHigh, true
	}

	// Last name only.
	if !ev.requiresContext {
		return model.ConfidenceMedium, true
	}
	if ev.contextTeamID != nil && highTeams[*ev.contextTeamID] {
		return model.ConfidenceMedium, true
	}
	return "", false
}

func sortedTypes(set map[model.PatternType]bool) []model.PatternType {
	out := make([]model.PatternType, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedPositions(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
