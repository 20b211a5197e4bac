// Package scrape recovers posts from newsroom HTML pages.
//
// Two passes run over each page: embedded JSON-LD article metadata
// first, then a heuristic sweep over card-like DOM containers. Results
// are deduplicated by link with the structured pass taking precedence.
package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/abelbrown/pressdeck/internal/feeds"
	"github.com/abelbrown/pressdeck/internal/fetch"
)

const (
	// maxCards bounds how many candidate containers the heuristic
	// pass inspects on a single page.
	maxCards = 120

	// maxPosts caps the combined output for one page.
	maxPosts = 30
)

// Scraper fetches a source's page and extracts posts from it.
type Scraper struct {
	client *fetch.Client
}

// New creates a Scraper backed by the shared HTTP client.
func New(client *fetch.Client) *Scraper {
	return &Scraper{client: client}
}

// Fetch downloads the source's page and runs both extraction passes.
func (s *Scraper) Fetch(ctx context.Context, src feeds.Source) ([]feeds.Post, error) {
	body, err := s.client.Get(ctx, src.FeedURL, fetch.AcceptHTML)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	posts := extractJSONLD(doc, src)
	posts = append(posts, scrapeCards(doc, src)...)
	return dedupe(posts, maxPosts), nil
}

// dedupe drops posts whose link was already seen, keeping the first
// occurrence, and caps the result at limit.
func dedupe(posts []feeds.Post, limit int) []feeds.Post {
	seen := make(map[string]struct{}, len(posts))
	out := posts[:0]
	for _, p := range posts {
		if _, ok := seen[p.Link]; ok {
			continue
		}
		seen[p.Link] = struct{}{}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
