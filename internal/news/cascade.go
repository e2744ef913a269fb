package news

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/albapepper/Scoracle-sub000/internal/model"
)

const (
	// maxWindowHours caps broadened windows at one week
	maxWindowHours = 168
	// minBroadenedHours is the floor for the final unquoted attempt
	minBroadenedHours = 48
)

// Attempt is one query the caller should make against the article source
type Attempt struct {
	Query       string `json:"query"`
	WindowHours int    `json:"window_hours"`
}

// Plan returns the ordered fallback attempts for a resolved entity name:
// exact phrase in the requested window, exact phrase over a week when the
// request was narrower, then the unquoted name over a clamped window.
// Execution stops at the first attempt with results; exhausting the plan
// empty-handed is a valid outcome, not an error.
func Plan(resolvedName string, initialWindowHours int) []Attempt {
	quoted := strconv.Quote(resolvedName)

	attempts := []Attempt{
		{Query: quoted, WindowHours: initialWindowHours},
	}

	broadened := initialWindowHours
	if initialWindowHours < maxWindowHours {
		broadened = maxWindowHours
		attempts = append(attempts, Attempt{Query: quoted, WindowHours: broadened})
	}

	window := broadened
	if window > maxWindowHours {
		window = maxWindowHours
	}
	if window < minBroadenedHours {
		window = minBroadenedHours
	}
	attempts = append(attempts, Attempt{Query: resolvedName, WindowHours: window})

	return attempts
}

// Run executes a cascade plan against the source, halting at the first
// non-empty result. Source errors are logged and treated as empty results,
// moving the cascade along to the next attempt.
func Run(ctx context.Context, src Source, resolvedName string, initialWindowHours int, log zerolog.Logger) ([]model.Article, error) {
	for _, attempt := range Plan(resolvedName, initialWindowHours) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		articles, err := src.Fetch(ctx, attempt.Query, attempt.WindowHours)
		if err != nil {
			log.Warn().
				Err(err).
				Str("query", attempt.Query).
				Int("window_hours", attempt.WindowHours).
				Msg("article fetch failed, continuing cascade")
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	return nil, nil
}
