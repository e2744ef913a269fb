// Package catalog turns raw entity records into matchable alias patterns.
//
// A Catalog is an immutable per-sport snapshot from a Provider. Compile
// derives every pattern the matcher will search for: full names, usable
// last names, team names and team nicknames. One normalized string may be
// claimed by several entities; downstream code must treat pattern text as
// a key into a list, never a single owner.
package catalog

import (
	"strings"

	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/normalize"
)

// minPatternLen is the shortest normalized string worth indexing
const minPatternLen = 2

// minNicknameLen is the shortest team nickname emitted as its own pattern
const minNicknameLen = 4

// PlayerRecord is one raw player row from a provider
type PlayerRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	TeamName string `json:"team,omitempty"` // display name of home team, may be empty
}

// TeamRecord is one raw team row from a provider
type TeamRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog is the per-sport snapshot handed to Compile
type Catalog struct {
	Sport   string         `json:"sport"`
	Players []PlayerRecord `json:"players"`
	Teams   []TeamRecord   `json:"teams"`
}

// Compiled is the output of Compile: entity records keyed by ref plus the
// flat pattern list the index is built from.
type Compiled struct {
	Sport    string
	Entities map[model.Ref]model.Entity
	Patterns []model.Pattern
}

// Compile builds patterns for every well-formed record in the catalog.
// Records with missing names are skipped individually; one bad row never
// aborts the build. surnames flags last names that are too common to trust
// without corroborating team context; nil means no name requires context.
func Compile(cat *Catalog, surnames map[string]bool) *Compiled {
	out := &Compiled{
		Sport:    cat.Sport,
		Entities: make(map[model.Ref]model.Entity),
	}

	// Teams first: player context linking needs the full team list.
	type normTeam struct {
		id   int
		norm string
	}
	normTeams := make([]normTeam, 0, len(cat.Teams))

	for _, t := range cat.Teams {
		full := normalize.Normalize(t.Name)
		if len(full) < minPatternLen {
			continue
		}

		ref := model.Ref{Type: model.EntityTeam, ID: t.ID}
		out.Entities[ref] = model.Entity{
			Ref:           ref,
			Sport:         cat.Sport,
			CanonicalName: t.Name,
		}
		normTeams = append(normTeams, normTeam{id: t.ID, norm: full})

		out.Patterns = append(out.Patterns, model.Pattern{
			Text:   full,
			Length: len(full),
			Type:   model.PatternTeamFull,
			Entity: ref,
		})

		tokens := strings.Fields(full)
		nickname := tokens[len(tokens)-1]
		if len(nickname) >= minNicknameLen {
			out.Patterns = append(out.Patterns, model.Pattern{
				Text:   nickname,
				Length: len(nickname),
				Type:   model.PatternTeamShort,
				Entity: ref,
			})
		}
	}

	for _, p := range cat.Players {
		full := normalize.Normalize(p.Name)
		if len(full) < minPatternLen {
			continue
		}

		ref := model.Ref{Type: model.EntityPlayer, ID: p.ID}

		// First team whose normalized name contains the player's home-team
		// string wins; no match leaves the link unset.
		var contextTeam *int
		if home := normalize.Normalize(p.TeamName); home != "" {
			for _, t := range normTeams {
				if strings.Contains(t.norm, home) {
					id := t.id
					contextTeam = &id
					break
				}
			}
		}

		out.Entities[ref] = model.Entity{
			Ref:           ref,
			Sport:         cat.Sport,
			CanonicalName: p.Name,
			HomeTeamID:    contextTeam,
		}

		out.Patterns = append(out.Patterns, model.Pattern{
			Text:          full,
			Length:        len(full),
			Type:          model.PatternFullName,
			Entity:        ref,
			ContextTeamID: contextTeam,
		})

		if last, ok := normalize.ExtractLastName(p.Name); ok {
			out.Patterns = append(out.Patterns, model.Pattern{
				Text:            last,
				Length:          len(last),
				Type:            model.PatternLastName,
				RequiresContext: surnames[last],
				Entity:          ref,
				ContextTeamID:   contextTeam,
			})
		}
	}

	return out
}
