// Package pipeline wires the catalog, index cache, news source, and
// matching pool into the operations the CLI exposes.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/match"
	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/news"
	"github.com/albapepper/Scoracle-sub000/internal/rank"
	"github.com/albapepper/Scoracle-sub000/internal/worker"
)

// Service orchestrates entity matching over news articles
type Service struct {
	indexes *index.CachedBuilder
	source  news.Source
	pool    *worker.MatchPool
	log     zerolog.Logger
}

// NewService creates a pipeline service
func NewService(indexes *index.CachedBuilder, source news.Source, workers int, log zerolog.Logger) *Service {
	return &Service{
		indexes: indexes,
		source:  source,
		pool:    worker.NewMatchPool(workers),
		log:     log,
	}
}

// MatchText extracts the entities of one sport mentioned in a text
func (s *Service) MatchText(ctx context.Context, sport, text string) ([]model.MatchedEntity, error) {
	ix, err := s.indexes.Index(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("load %s index: %w", sport, err)
	}
	return match.Extract(ix, text), nil
}

// Mentions resolves the target's canonical name, fetches recent articles
// through the cascading retrieval plan, matches them in parallel, and
// ranks co-mentioned entities. An empty report (zero articles) means the
// cascade came back empty-handed, which is a valid outcome.
func (s *Service) Mentions(ctx context.Context, sport string, target model.Ref, windowHours int) (*rank.Report, error) {
	ix, err := s.indexes.Index(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("load %s index: %w", sport, err)
	}

	entity, ok := ix.Entity(target)
	if !ok {
		return nil, fmt.Errorf("%s %d not found in %s catalog", target.Type, target.ID, sport)
	}

	articles, err := news.Run(ctx, s.source, entity.CanonicalName, windowHours, s.log)
	if err != nil {
		return nil, fmt.Errorf("fetch articles for %q: %w", entity.CanonicalName, err)
	}

	s.log.Debug().
		Str("sport", sport).
		Str("target", entity.CanonicalName).
		Int("articles", len(articles)).
		Msg("matching fetched articles")

	batch := s.pool.MatchArticles(ctx, ix, articles)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return rank.Rank(target, entity.CanonicalName, batch), nil
}

// DetectMode guesses whether a free-form query names a player or a team
// by probing the indexes of every listed sport. Sports whose catalog is
// unavailable are skipped; detection degrades rather than fails.
func (s *Service) DetectMode(ctx context.Context, sports []string, query string) (rank.Mode, error) {
	var indexes []*index.Index
	for _, sport := range sports {
		ix, err := s.indexes.Index(ctx, sport)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			s.log.Warn().Err(err).Str("sport", sport).Msg("skipping sport for mode detection")
			continue
		}
		indexes = append(indexes, ix)
	}
	return rank.DetectMode(indexes, query), nil
}
