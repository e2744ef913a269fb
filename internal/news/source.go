// Package news retrieves recent articles for an entity, broadening the
// query and time window step by step until something comes back.
package news

import (
	"context"

	"github.com/albapepper/Scoracle-sub000/internal/model"
)

// Source fetches articles matching a query within a recency window.
// Implementations may report any failure (network, parse, zero results)
// as an empty slice; callers treat all empties identically.
type Source interface {
	Fetch(ctx context.Context, query string, windowHours int) ([]model.Article, error)
}
