package scrape

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// cardSelector matches the containers newsroom pages typically wrap
// each story in.
const cardSelector = "article, .article, .post, .card, .news-item, li"

// scrapeCards sweeps card-like containers for posts. A card with no
// recoverable timestamp is dropped rather than dated "now": undated
// cards are almost always navigation noise.
func scrapeCards(doc *goquery.Document, src feeds.Source) []feeds.Post {
	var posts []feeds.Post
	doc.Find(cardSelector).EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxCards {
			return false
		}

		anchor := card.Find("a[href]").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}
		link := feeds.ResolveLink(href, src)
		if !feeds.IsArticleLink(link, src) {
			return true
		}

		title := feeds.NormalizeSpace(card.Find("h1, h2, h3, h4").First().Text())
		if title == "" {
			title = feeds.NormalizeSpace(anchor.Text())
		}
		if !feeds.IsArticleTitle(title) {
			return true
		}

		summary := feeds.NormalizeSpace(card.Find("p").First().Text())

		published, ok := cardTime(card, title, summary, link)
		if !ok {
			return true
		}

		image := ""
		if imgSrc, ok := card.Find("img[src]").First().Attr("src"); ok {
			image = feeds.ResolveLink(imgSrc, src)
		}

		posts = append(posts, feeds.Post{
			Company:        src.Company,
			Title:          title,
			Link:           link,
			Published:      published,
			Summary:        summary,
			Image:          image,
			SourceHomepage: src.Homepage,
		})
		return true
	})
	return posts
}

// cardTime recovers a timestamp from a card: the <time> element's
// datetime attribute or text first, then free-text extraction from the
// title, summary, and link in that order.
func cardTime(card *goquery.Selection, title, summary, link string) (time.Time, bool) {
	if el := card.Find("time").First(); el.Length() > 0 {
		if dt, ok := el.Attr("datetime"); ok {
			if ts, ok := feeds.ParseTextTime(dt); ok {
				return ts, true
			}
		}
		if ts, ok := feeds.ParseTextTime(feeds.NormalizeSpace(el.Text())); ok {
			return ts, true
		}
	}
	for _, text := range []string{title, summary, link} {
		if ts, ok := feeds.ParseTextTime(text); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}
