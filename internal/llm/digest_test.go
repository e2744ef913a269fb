package llm

import (
	"strings"
	"testing"

	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/rank"
)

func TestNewDigester_DisabledWithoutProvider(t *testing.T) {
	d, err := NewDigester(model.LLMConfig{})
	if err != nil {
		t.Fatalf("empty provider should disable the digester, got %v", err)
	}
	if d != nil {
		t.Error("expected a nil digester when disabled")
	}
}

func TestNewDigester_RequiresAPIKey(t *testing.T) {
	_, err := NewDigester(model.LLMConfig{Provider: "openai"})
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
}

func TestNewDigester_RejectsUnknownProvider(t *testing.T) {
	_, err := NewDigester(model.LLMConfig{Provider: "oracle", APIKey: "x"})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported-provider error, got %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	report := &rank.Report{
		Target:         model.Ref{Type: model.EntityPlayer, ID: 1},
		TargetName:     "Cole Palmer",
		ArticleCount:   12,
		TargetArticles: 7,
		CurrentClub: &model.MentionCount{
			Entity:        model.Ref{Type: model.EntityTeam, ID: 10},
			CanonicalName: "Chelsea FC",
			Count:         5,
		},
		LinkedTeams: []model.MentionCount{
			{Entity: model.Ref{Type: model.EntityTeam, ID: 11}, CanonicalName: "FC Barcelona", Count: 2},
		},
	}

	prompt := BuildPrompt(report)

	for _, want := range []string{"Cole Palmer", "Chelsea FC", "FC Barcelona", "12", "7"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
