package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/albapepper/Scoracle-sub000/internal/model"
	"github.com/albapepper/Scoracle-sub000/internal/util"
)

// GoogleNews fetches articles from the Google News RSS search endpoint.
// Every failure mode degrades to an empty result: the cascade above treats
// a broken fetch and a dry query the same way.
type GoogleNews struct {
	baseURL   string
	client    *http.Client
	parser    *gofeed.Parser
	limiter   *rate.Limiter
	robots    *robotsChecker
	userAgent string
	log       zerolog.Logger
}

// NewGoogleNews creates a source for the configured RSS endpoint
func NewGoogleNews(cfg model.NewsConfig, httpCfg model.HTTPConfig, log zerolog.Logger) *GoogleNews {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	client := &http.Client{
		Timeout: httpCfg.Timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy),
		},
	}

	src := &GoogleNews{
		baseURL:   cfg.BaseURL,
		client:    client,
		parser:    gofeed.NewParser(),
		limiter:   rate.NewLimiter(rate.Limit(rps), 2),
		userAgent: httpCfg.UserAgent,
		log:       log,
	}
	if cfg.RespectRobots {
		src.robots = newRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}
	return src
}

// Fetch queries the RSS search feed for articles within the window
func (s *GoogleNews) Fetch(ctx context.Context, query string, windowHours int) ([]model.Article, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feedURL := s.searchURL(query, windowHours)
	if s.robots != nil && !s.robots.allowed(ctx, feedURL) {
		s.log.Warn().Str("url", feedURL).Msg("feed fetch disallowed by robots.txt")
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("url", feedURL).Msg("feed fetch failed")
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn().Int("status", resp.StatusCode).Str("url", feedURL).Msg("feed fetch returned non-200")
		return nil, nil
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		s.log.Warn().Err(err).Str("url", feedURL).Msg("feed parse failed")
		return nil, nil
	}

	return ConvertFeed(feed, windowHours, time.Now()), nil
}

// searchURL builds the RSS search URL with the recency window baked into
// the query (the "when:72h" operator).
func (s *GoogleNews) searchURL(query string, windowHours int) string {
	q := fmt.Sprintf("%s when:%dh", query, windowHours)
	params := url.Values{
		"q":    {q},
		"hl":   {"en-US"},
		"gl":   {"US"},
		"ceid": {"US:en"},
	}
	return s.baseURL + "/rss/search?" + params.Encode()
}

// ConvertFeed reduces a parsed feed to articles inside the window. Items
// without a parseable timestamp are kept; the feed is recency-sorted
// upstream and dropping them loses more than it saves.
func ConvertFeed(feed *gofeed.Feed, windowHours int, now time.Time) []model.Article {
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour)

	articles := make([]model.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		if published.Before(cutoff) {
			continue
		}

		articles = append(articles, model.Article{
			Title:       item.Title,
			Description: StripTags(item.Description),
			Link:        item.Link,
			PublishedAt: published,
		})
	}
	return articles
}
