package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/albapepper/Scoracle-sub000/internal/cache"
	"github.com/albapepper/Scoracle-sub000/internal/catalog"
	"github.com/albapepper/Scoracle-sub000/internal/index"
	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/news"
	"github.com/albapepper/Scoracle-sub000/internal/pipeline"
)

// buildService assembles the pipeline from configuration
func buildService(cfg *model.Config, log zerolog.Logger) (*pipeline.Service, error) {
	provider, err := buildProvider(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var store cache.Store
	if cfg.Cache.Enabled {
		store = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	surnames := catalog.CommonSurnames(cfg.Catalog.Surnames)
	indexes := index.NewCachedBuilder(provider, store, cfg.Cache.TTL, surnames)
	source := news.NewGoogleNews(cfg.News, cfg.HTTP, log)

	return pipeline.NewService(indexes, source, cfg.Concurrency.MatchWorkers, log), nil
}

// buildProvider picks the catalog backend by driver name
func buildProvider(cfg model.CatalogConfig) (catalog.Provider, error) {
	switch cfg.Driver {
	case "json", "":
		return catalog.NewFileProvider(cfg.Path), nil
	case "sqlite":
		return catalog.OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q (want json or sqlite)", cfg.Driver)
	}
}
