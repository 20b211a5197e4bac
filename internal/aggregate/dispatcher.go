// Package aggregate fans out over all sources and merges their posts
// into one ranked, bounded result.
package aggregate

import (
	"context"
	"strings"

	"github.com/abelbrown/pressdeck/internal/feeds"
	"github.com/abelbrown/pressdeck/internal/feeds/rss"
	"github.com/abelbrown/pressdeck/internal/feeds/scrape"
	"github.com/abelbrown/pressdeck/internal/fetch"
)

// fetcher is the shape shared by the RSS parser and the HTML scraper.
type fetcher interface {
	Fetch(ctx context.Context, src feeds.Source) ([]feeds.Post, error)
}

// SourceDispatcher picks the parsing strategy for a source and falls
// back from feed parsing to HTML scraping when the feed yields nothing.
type SourceDispatcher struct {
	rss  fetcher
	html fetcher
}

// NewDispatcher creates a SourceDispatcher whose strategies share one
// HTTP client.
func NewDispatcher(client *fetch.Client) *SourceDispatcher {
	return &SourceDispatcher{
		rss:  rss.New(client),
		html: scrape.New(client),
	}
}

// Dispatch fetches one source. Feed-like URLs try RSS/Atom first; any
// error or an empty feed falls through to the HTML path. A feed that
// 200-OKs with a useless body should not zero out a company whose page
// is still scrapable.
func (d *SourceDispatcher) Dispatch(ctx context.Context, src feeds.Source) ([]feeds.Post, error) {
	if feedLike(src.FeedURL) {
		posts, err := d.rss.Fetch(ctx, src)
		if err == nil && len(posts) > 0 {
			return posts, nil
		}
	}
	return d.html.Fetch(ctx, src)
}

// feedLike reports whether a URL looks like an RSS/Atom endpoint.
func feedLike(url string) bool {
	return strings.HasSuffix(url, ".xml") ||
		strings.Contains(url, "/feed") ||
		strings.Contains(url, "/rss")
}
