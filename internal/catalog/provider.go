package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnavailable signals that the catalog backend could not be reached or
// read. Callers decide whether to serve stale cached patterns or skip
// enrichment; matching itself never fails on it.
var ErrUnavailable = errors.New("catalog unavailable")

// Provider loads immutable per-sport catalog snapshots
type Provider interface {
	Catalog(ctx context.Context, sport string) (*Catalog, error)
}

// FileProvider reads catalogs from a single JSON file keyed by sport:
//
//	{"soccer": {"players": [...], "teams": [...]}, "nba": {...}}
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the given JSON file
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Catalog returns the snapshot for one sport. An unknown sport yields an
// empty catalog, not an error; matching degrades to "no matches".
func (p *FileProvider) Catalog(ctx context.Context, sport string) (*Catalog, error) {
	sports, err := p.All(ctx)
	if err != nil {
		return nil, err
	}

	cat, ok := sports[sport]
	if !ok {
		return &Catalog{Sport: sport}, nil
	}
	return cat, nil
}

// All loads every sport in the file, used by seeding
func (p *FileProvider) All(ctx context.Context) (map[string]*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, p.path, err)
	}

	var sports map[string]*Catalog
	if err := json.Unmarshal(data, &sports); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, p.path, err)
	}

	for sport, cat := range sports {
		if cat == nil {
			delete(sports, sport)
			continue
		}
		cat.Sport = sport
	}
	return sports, nil
}

// Static is an in-memory provider, used by tests and embedded fixtures
type Static struct {
	Sports map[string]*Catalog
}

// Catalog returns the stored snapshot, or an empty catalog for unknown sports
func (s *Static) Catalog(ctx context.Context, sport string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cat, ok := s.Sports[sport]; ok && cat != nil {
		return cat, nil
	}
	return &Catalog{Sport: sport}, nil
}
