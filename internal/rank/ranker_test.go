package rank

import (
	"testing"

	"github.com/albapepper/Scoracle-sub000/internal/model"
)

func player(id int, name string) model.MatchedEntity {
	return model.MatchedEntity{
		Entity:        model.Ref{Type: model.EntityPlayer, ID: id},
		CanonicalName: name,
		Confidence:    model.ConfidenceHigh,
	}
}

func team(id int, name string) model.MatchedEntity {
	return model.MatchedEntity{
		Entity:        model.Ref{Type: model.EntityTeam, ID: id},
		CanonicalName: name,
		Confidence:    model.ConfidenceHigh,
	}
}

func article(link string, matches ...model.MatchedEntity) ArticleMatches {
	return ArticleMatches{
		Article: model.Article{Title: link, Link: link},
		Matches: matches,
	}
}

// Five synthetic articles about player P: three co-mention team A, one
// co-mentions team B, one mentions neither.
func fixtureBatch() []ArticleMatches {
	p := player(1, "Player P")
	return []ArticleMatches{
		article("https://news.test/1", p, team(10, "Team A")),
		article("https://news.test/2", p, team(10, "Team A")),
		article("https://news.test/3", p, team(10, "Team A")),
		article("https://news.test/4", p, team(11, "Team B")),
		article("https://news.test/5", p),
	}
}

func TestRank_CurrentClubExclusion(t *testing.T) {
	target := model.Ref{Type: model.EntityPlayer, ID: 1}
	report := Rank(target, "Player P", fixtureBatch())

	if report.TargetArticles != 5 {
		t.Errorf("expected 5 target articles, got %d", report.TargetArticles)
	}

	// Unfiltered ranking still shows Team A with count 3.
	if len(report.Mentions) != 2 {
		t.Fatalf("expected 2 co-mentioned entities, got %d", len(report.Mentions))
	}
	if report.Mentions[0].CanonicalName != "Team A" || report.Mentions[0].Count != 3 {
		t.Errorf("expected Team A count 3 first, got %+v", report.Mentions[0])
	}

	// Team A is inferred as the current club and excluded from the
	// linked-teams view; Team B remains with count 1.
	if report.CurrentClub == nil || report.CurrentClub.CanonicalName != "Team A" {
		t.Fatalf("expected Team A as inferred current club, got %+v", report.CurrentClub)
	}
	if len(report.LinkedTeams) != 1 {
		t.Fatalf("expected 1 linked team, got %d", len(report.LinkedTeams))
	}
	if report.LinkedTeams[0].CanonicalName != "Team B" || report.LinkedTeams[0].Count != 1 {
		t.Errorf("expected Team B count 1, got %+v", report.LinkedTeams[0])
	}
}

func TestRank_EvidenceLinks(t *testing.T) {
	target := model.Ref{Type: model.EntityPlayer, ID: 1}
	report := Rank(target, "Player P", fixtureBatch())

	teamA := report.Mentions[0]
	if len(teamA.Links) != 3 {
		t.Errorf("expected 3 evidence links for Team A, got %v", teamA.Links)
	}
}

func TestRank_ArticlesWithoutTargetIgnored(t *testing.T) {
	target := model.Ref{Type: model.EntityPlayer, ID: 1}
	batch := []ArticleMatches{
		article("https://news.test/1", player(1, "Player P"), team(10, "Team A")),
		article("https://news.test/2", player(2, "Player Q"), team(11, "Team B")),
	}

	report := Rank(target, "Player P", batch)

	if report.TargetArticles != 1 {
		t.Errorf("expected 1 target article, got %d", report.TargetArticles)
	}
	for _, mc := range report.Mentions {
		if mc.CanonicalName == "Team B" {
			t.Error("co-mentions from articles without the target must not count")
		}
	}
}

func TestRank_TieBreakIsAlphabetical(t *testing.T) {
	target := model.Ref{Type: model.EntityPlayer, ID: 1}
	p := player(1, "Player P")
	batch := []ArticleMatches{
		article("https://news.test/1", p, player(3, "Zinedine Zidane"), player(2, "Andres Iniesta")),
	}

	report := Rank(target, "Player P", batch)

	if len(report.Mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(report.Mentions))
	}
	if report.Mentions[0].CanonicalName != "Andres Iniesta" {
		t.Errorf("equal counts must order alphabetically, got %q first", report.Mentions[0].CanonicalName)
	}
}

func TestRank_DeterministicAcrossBatchOrder(t *testing.T) {
	target := model.Ref{Type: model.EntityPlayer, ID: 1}
	batch := fixtureBatch()

	forward := Rank(target, "Player P", batch)

	reversed := make([]ArticleMatches, len(batch))
	for i, am := range batch {
		reversed[len(batch)-1-i] = am
	}
	backward := Rank(target, "Player P", reversed)

	if len(forward.Mentions) != len(backward.Mentions) {
		t.Fatal("ranking length differs with batch order")
	}
	for i := range forward.Mentions {
		f, b := forward.Mentions[i], backward.Mentions[i]
		if f.Entity != b.Entity || f.Count != b.Count {
			t.Errorf("position %d differs with batch order: %+v vs %+v", i, f, b)
		}
	}
}

func TestRank_TeamTargetHasNoClubExclusion(t *testing.T) {
	target := model.Ref{Type: model.EntityTeam, ID: 10}
	batch := []ArticleMatches{
		article("https://news.test/1", team(10, "Team A"), team(11, "Team B"), player(1, "Player P")),
	}

	report := Rank(target, "Team A", batch)

	if report.CurrentClub != nil {
		t.Errorf("team targets have no inferred club, got %+v", report.CurrentClub)
	}
	if len(report.LinkedTeams) != 1 || report.LinkedTeams[0].CanonicalName != "Team B" {
		t.Errorf("expected Team B in linked teams, got %+v", report.LinkedTeams)
	}
}

func TestRank_EmptyBatch(t *testing.T) {
	report := Rank(model.Ref{Type: model.EntityPlayer, ID: 1}, "Player P", nil)

	if report.TargetArticles != 0 || len(report.Mentions) != 0 {
		t.Errorf("empty batch should yield an empty report, got %+v", report)
	}
}
