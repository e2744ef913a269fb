// Package rank aggregates matched articles into co-mention rankings.
//
// Ranking is deterministic regardless of the order articles were matched
// in: counts are aggregated first, then sorted by (count desc, canonical
// name asc, ref). The tie-break rule is a deliberate choice; see DESIGN.md.
package rank

import (
	"sort"

	"github.com/albapepper/Scoracle-sub000/internal/model"
)

// ArticleMatches is one article reduced to its matched entity set
type ArticleMatches struct {
	Article model.Article
	Matches []model.MatchedEntity
}

// Report is the full co-mention ranking for one target entity
type Report struct {
	Target         model.Ref            `json:"target"`
	TargetName     string               `json:"target_name"`
	ArticleCount   int                  `json:"article_count"`  // articles in the batch
	TargetArticles int                  `json:"target_articles"` // articles mentioning the target
	Mentions       []model.MentionCount `json:"mentions"`        // every co-mentioned entity
	LinkedTeams    []model.MentionCount `json:"linked_teams"`    // teams minus the inferred current club
	CurrentClub    *model.MentionCount  `json:"current_club,omitempty"`
}

// Rank counts, for every article mentioning the target, each other matched
// entity in that article. For player targets the most co-mentioned team is
// inferred to be the current club and removed from the linked-teams view
// (transfer-rumor output wants everyone else). Inference by raw frequency
// can lag reality right after a transfer; that limitation is documented,
// not corrected.
func Rank(target model.Ref, targetName string, batch []ArticleMatches) *Report {
	report := &Report{
		Target:       target,
		TargetName:   targetName,
		ArticleCount: len(batch),
	}

	type tally struct {
		name  string
		count int
		links map[string]bool
	}
	counts := make(map[model.Ref]*tally)

	for _, am := range batch {
		if !containsTarget(am.Matches, target) {
			continue
		}
		report.TargetArticles++

		for _, m := range am.Matches {
			if m.Entity == target {
				continue
			}
			t, ok := counts[m.Entity]
			if !ok {
				t = &tally{name: m.CanonicalName, links: make(map[string]bool)}
				counts[m.Entity] = t
			}
			t.count++
			if am.Article.Link != "" {
				t.links[am.Article.Link] = true
			}
		}
	}

	for ref, t := range counts {
		report.Mentions = append(report.Mentions, model.MentionCount{
			Entity:        ref,
			CanonicalName: t.name,
			Count:         t.count,
			Links:         sortedLinks(t.links),
		})
	}
	sortMentions(report.Mentions)

	teams := filterTeams(report.Mentions)
	if target.Type == model.EntityPlayer && len(teams) > 0 {
		club := teams[0]
		report.CurrentClub = &club
		report.LinkedTeams = make([]model.MentionCount, 0, len(teams)-1)
		for _, mc := range teams[1:] {
			report.LinkedTeams = append(report.LinkedTeams, mc)
		}
	} else {
		report.LinkedTeams = teams
	}

	return report
}

func containsTarget(matches []model.MatchedEntity, target model.Ref) bool {
	for _, m := range matches {
		if m.Entity == target {
			return true
		}
	}
	return false
}

// sortMentions orders by count desc, then canonical name asc, then ref.
// Equal counts are unspecified upstream; the alphabetical rule keeps the
// output stable across runs.
func sortMentions(mentions []model.MentionCount) {
	sort.Slice(mentions, func(i, j int) bool {
		a, b := mentions[i], mentions[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.CanonicalName != b.CanonicalName {
			return a.CanonicalName < b.CanonicalName
		}
		return a.Entity.Less(b.Entity)
	})
}

func filterTeams(mentions []model.MentionCount) []model.MentionCount {
	var teams []model.MentionCount
	for _, mc := range mentions {
		if mc.Entity.Type == model.EntityTeam {
			teams = append(teams, mc)
		}
	}
	return teams
}

func sortedLinks(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
