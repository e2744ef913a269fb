// Package worker fans per-article matching out across a bounded set of
// goroutines. Matching articles is order-independent; results come back
// in input order so downstream ranking stays deterministic.
package worker

import (
	"context"
	"sync"

	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/match"
	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/rank"
)

// MatchPool runs entity extraction over article batches concurrently
type MatchPool struct {
	workers int
}

// NewMatchPool creates a pool with the given concurrency
func NewMatchPool(workers int) *MatchPool {
	if workers <= 0 {
		workers = 1
	}
	return &MatchPool{workers: workers}
}

// MatchArticles extracts entities from every article against the index.
// Results are positioned by input order. Cancelling the context stops
// workers from picking up further articles; already-started extractions
// finish (they are pure CPU work and fast).
func (p *MatchPool) MatchArticles(ctx context.Context, ix *index.Index, articles []model.Article) []rank.ArticleMatches {
	results := make([]rank.ArticleMatches, len(articles))
	for i, a := range articles {
		results[i].Article = a
	}
	if len(articles) == 0 {
		return results
	}

	workers := p.workers
	if workers > len(articles) {
		workers = len(articles)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i].Matches = match.Extract(ix, articles[i].Text())
			}
		}()
	}

	for i := range articles {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
