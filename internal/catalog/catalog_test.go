package catalog

import (
	"testing"

	"github.com/albapepper/Scoracle-sub000/internal/model"
)

func patternsFor(c *Compiled, ref model.Ref) []model.Pattern {
	var out []model.Pattern
	for _, p := range c.Patterns {
		if p.Entity == ref {
			out = append(out, p)
		}
	}
	return out
}

func findPattern(pats []model.Pattern, typ model.PatternType) (model.Pattern, bool) {
	for _, p := range pats {
		if p.Type == typ {
			return p, true
		}
	}
	return model.Pattern{}, false
}

func TestCompile_PlayerPatterns(t *testing.T) {
	cat := &Catalog{
		Sport: "soccer",
		Players: []PlayerRecord{
			{ID: 1, Name: "Lionel Messi", TeamName: "Inter Miami"},
			{ID: 2, Name: "Neymar"},          // single token: no last-name pattern
			{ID: 3, Name: "Kim Min Jae"},     // last name too short
			{ID: 4, Name: "Bernardo Silva"},  // common surname
		},
		Teams: []TeamRecord{
			{ID: 10, Name: "Inter Miami CF"},
		},
	}

	c := Compile(cat, CommonSurnames(nil))

	messi := patternsFor(c, model.Ref{Type: model.EntityPlayer, ID: 1})
	if len(messi) != 2 {
		t.Fatalf("expected 2 patterns for Messi, got %d", len(messi))
	}
	full, ok := findPattern(messi, model.PatternFullName)
	if !ok || full.Text != "lionel messi" {
		t.Errorf("expected full-name pattern 'lionel messi', got %+v", full)
	}
	last, ok := findPattern(messi, model.PatternLastName)
	if !ok || last.Text != "messi" {
		t.Errorf("expected last-name pattern 'messi', got %+v", last)
	}
	if last.RequiresContext {
		t.Error("'messi' is not a common surname, should not require context")
	}
	if last.ContextTeamID == nil || *last.ContextTeamID != 10 {
		t.Errorf("expected context team 10, got %v", last.ContextTeamID)
	}

	neymar := patternsFor(c, model.Ref{Type: model.EntityPlayer, ID: 2})
	if len(neymar) != 1 || neymar[0].Type != model.PatternFullName {
		t.Errorf("single-token name should yield only a full-name pattern, got %+v", neymar)
	}

	jae := patternsFor(c, model.Ref{Type: model.EntityPlayer, ID: 3})
	if _, ok := findPattern(jae, model.PatternLastName); ok {
		t.Error("'jae' is shorter than 4 characters, should yield no last-name pattern")
	}

	silva := patternsFor(c, model.Ref{Type: model.EntityPlayer, ID: 4})
	last, ok = findPattern(silva, model.PatternLastName)
	if !ok {
		t.Fatal("expected last-name pattern for Bernardo Silva")
	}
	if !last.RequiresContext {
		t.Error("'silva' is a common surname, should require context")
	}
}

func TestCompile_TeamPatterns(t *testing.T) {
	cat := &Catalog{
		Sport: "soccer",
		Teams: []TeamRecord{
			{ID: 10, Name: "West Ham United"},
			{ID: 11, Name: "Leeds Utd"}, // nickname "utd" too short
		},
	}

	c := Compile(cat, nil)

	westham := patternsFor(c, model.Ref{Type: model.EntityTeam, ID: 10})
	full, ok := findPattern(westham, model.PatternTeamFull)
	if !ok || full.Text != "west ham united" {
		t.Errorf("expected team-full 'west ham united', got %+v", full)
	}
	short, ok := findPattern(westham, model.PatternTeamShort)
	if !ok || short.Text != "united" {
		t.Errorf("expected team-short 'united', got %+v", short)
	}

	leeds := patternsFor(c, model.Ref{Type: model.EntityTeam, ID: 11})
	if _, ok := findPattern(leeds, model.PatternTeamShort); ok {
		t.Error("nickname shorter than 4 normalized characters should be dropped")
	}
}

func TestCompile_ContextLinking_FirstMatchWins(t *testing.T) {
	cat := &Catalog{
		Sport: "soccer",
		Players: []PlayerRecord{
			{ID: 1, Name: "Cole Palmer", TeamName: "United"},
			{ID: 2, Name: "Erling Haaland", TeamName: "Real Sociedad"}, // no such team
		},
		Teams: []TeamRecord{
			{ID: 20, Name: "Manchester United"},
			{ID: 21, Name: "Newcastle United"},
		},
	}

	c := Compile(cat, nil)

	palmer := c.Entities[model.Ref{Type: model.EntityPlayer, ID: 1}]
	if palmer.HomeTeamID == nil || *palmer.HomeTeamID != 20 {
		t.Errorf("expected first containing team (20) to win, got %v", palmer.HomeTeamID)
	}

	haaland := c.Entities[model.Ref{Type: model.EntityPlayer, ID: 2}]
	if haaland.HomeTeamID != nil {
		t.Errorf("expected no context link for unmatched team, got %v", haaland.HomeTeamID)
	}
}

func TestCompile_SkipsMalformedRecords(t *testing.T) {
	cat := &Catalog{
		Sport: "soccer",
		Players: []PlayerRecord{
			{ID: 1, Name: ""},
			{ID: 2, Name: "?!"},
			{ID: 3, Name: "Lionel Messi"},
		},
		Teams: []TeamRecord{
			{ID: 10, Name: ""},
			{ID: 11, Name: "Inter Miami"},
		},
	}

	c := Compile(cat, nil)

	if _, ok := c.Entities[model.Ref{Type: model.EntityPlayer, ID: 1}]; ok {
		t.Error("player with empty name should be skipped")
	}
	if _, ok := c.Entities[model.Ref{Type: model.EntityPlayer, ID: 2}]; ok {
		t.Error("player whose name normalizes to empty should be skipped")
	}
	if _, ok := c.Entities[model.Ref{Type: model.EntityPlayer, ID: 3}]; !ok {
		t.Error("well-formed player should survive malformed siblings")
	}
	if _, ok := c.Entities[model.Ref{Type: model.EntityTeam, ID: 11}]; !ok {
		t.Error("well-formed team should survive malformed siblings")
	}
}

func TestCommonSurnames_Override(t *testing.T) {
	def := CommonSurnames(nil)
	if !def["smith"] {
		t.Error("default set should contain 'smith'")
	}

	custom := CommonSurnames([]string{"palmer"})
	if custom["smith"] {
		t.Error("override should replace the default set entirely")
	}
	if !custom["palmer"] {
		t.Error("override should contain 'palmer'")
	}
}
