package rank

import (
	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/match"
	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/normalize"
)

// Mode is the resolved interpretation of a free-text query
type Mode string

const (
	ModePlayer Mode = "player"
	ModeTeam   Mode = "team"
)

// DetectMode decides whether a free-text query names a player or a team.
// Each sport's index contributes its longest boundary-respecting pattern
// match; confidence is matched length over query length, computed per
// entity kind. Players win ties, and an unmatched query defaults to player.
func DetectMode(indexes []*index.Index, query string) Mode {
	haystack := normalize.Normalize(query)
	if haystack == "" {
		return ModePlayer
	}

	var bestPlayer, bestTeam int
	for _, ix := range indexes {
		for _, hit := range ix.FindRaw(haystack) {
			if !match.BoundaryOK(haystack, hit.Start, hit.End) {
				continue
			}
			for _, p := range ix.Patterns(hit.Pattern) {
				switch p.Entity.Type {
				case model.EntityPlayer:
					if hit.Length > bestPlayer {
						bestPlayer = hit.Length
					}
				case model.EntityTeam:
					if hit.Length > bestTeam {
						bestTeam = hit.Length
					}
				}
			}
		}
	}

	playerConf := float64(bestPlayer) / float64(len(haystack))
	teamConf := float64(bestTeam) / float64(len(haystack))

	switch {
	case bestPlayer > 0 && playerConf >= teamConf:
		return ModePlayer
	case bestTeam > 0:
		return ModeTeam
	default:
		return ModePlayer
	}
}
