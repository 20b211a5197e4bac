// Package rss parses RSS and Atom feeds into posts.
package rss

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/abelbrown/pressdeck/internal/feeds"
	"github.com/abelbrown/pressdeck/internal/fetch"
)

// Parser fetches a source's feed URL and converts its entries to posts.
type Parser struct {
	client *fetch.Client
	parser *gofeed.Parser
}

// New creates a Parser backed by the shared HTTP client.
func New(client *fetch.Client) *Parser {
	return &Parser{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// Fetch downloads and parses the source's feed. Entries whose link or
// title fail the article heuristics are dropped silently; a feed that
// cannot be interpreted as XML at all is an error.
func (p *Parser) Fetch(ctx context.Context, src feeds.Source) ([]feeds.Post, error) {
	body, err := p.client.Get(ctx, src.FeedURL, fetch.AcceptFeed)
	if err != nil {
		return nil, err
	}

	feed, err := p.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]feeds.Post, 0, len(feed.Items))
	for _, entry := range feed.Items {
		link := feeds.ResolveLink(entry.Link, src)
		if !feeds.IsArticleLink(link, src) {
			continue
		}

		title := feeds.NormalizeSpace(entry.Title)
		if !feeds.IsArticleTitle(title) {
			continue
		}

		posts = append(posts, feeds.Post{
			Company:        src.Company,
			Title:          title,
			Link:           link,
			Published:      feeds.ResolveTime(entryTime(entry), entryTimeText(entry)),
			Summary:        feeds.StripMarkup(entry.Description),
			Image:          entryImage(entry, src),
			SourceHomepage: src.Homepage,
		})
	}
	return posts, nil
}

func entryTime(entry *gofeed.Item) *time.Time {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed
	}
	return entry.UpdatedParsed
}

func entryTimeText(entry *gofeed.Item) string {
	if entry.Published != "" {
		return entry.Published
	}
	return entry.Updated
}

// entryImage picks the best image for an entry: media:content first,
// then media:thumbnail, then an image enclosure, then the first <img>
// embedded in the summary or content HTML.
func entryImage(entry *gofeed.Item, src feeds.Source) string {
	if url := mediaURL(entry, "content"); url != "" {
		return url
	}
	if url := mediaURL(entry, "thumbnail"); url != "" {
		return url
	}
	for _, enc := range entry.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	for _, html := range []string{entry.Description, entry.Content} {
		if img := feeds.FirstImageSrc(html); img != "" {
			return feeds.ResolveLink(img, src)
		}
	}
	return ""
}

// mediaURL digs a url attribute out of a media RSS extension element.
func mediaURL(entry *gofeed.Item, name string) string {
	media, ok := entry.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[name] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}
