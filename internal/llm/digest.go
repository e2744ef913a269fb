// Package llm turns a mention report into a short prose digest through an
// OpenAI-compatible chat endpoint. The feature is opt-in: with no provider
// configured the pipeline runs without it.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/rank"
)

const (
	defaultModel   = openai.GPT4oMini
	requestTimeout = 30 * time.Second
	maxTokens      = 400
)

// Digester summarizes mention reports
type Digester struct {
	client *openai.Client
	model  string
}

// NewDigester creates a digester from config. Returns nil when no provider
// is configured; callers treat a nil digester as the feature being off.
func NewDigester(cfg model.LLMConfig) (*Digester, error) {
	if cfg.Provider == "" {
		return nil, nil
	}
	if cfg.Provider != "openai" {
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm provider %q requires an API key", cfg.Provider)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	mdl := cfg.Model
	if mdl == "" {
		mdl = defaultModel
	}

	return &Digester{
		client: openai.NewClientWithConfig(clientConfig),
		model:  mdl,
	}, nil
}

// Digest generates a 3-4 sentence summary of the report. The prompt pins
// the model to the report's own numbers; it must not speculate beyond them.
func (d *Digester) Digest(ctx context.Context, report *rank.Report) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize sports-news mention statistics. Report only what the counts show. Do not speculate about transfers or outcomes.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(report),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("llm digest: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm digest: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the report into the user prompt
func BuildPrompt(report *rank.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s (%s)\n", report.TargetName, report.Target.Type)
	fmt.Fprintf(&b, "Articles scanned: %d, mentioning the target: %d\n",
		report.ArticleCount, report.TargetArticles)

	if report.CurrentClub != nil {
		fmt.Fprintf(&b, "Most co-mentioned team (treated as current club): %s (%d articles)\n",
			report.CurrentClub.CanonicalName, report.CurrentClub.Count)
	}

	if len(report.LinkedTeams) > 0 {
		b.WriteString("Other co-mentioned teams:\n")
		for i, m := range report.LinkedTeams {
			if i >= 10 {
				fmt.Fprintf(&b, "... and %d more\n", len(report.LinkedTeams)-10)
				break
			}
			fmt.Fprintf(&b, "- %s: %d\n", m.CanonicalName, m.Count)
		}
	}

	b.WriteString("\nWrite a 3-4 sentence digest of these mention counts.")
	return b.String()
}
