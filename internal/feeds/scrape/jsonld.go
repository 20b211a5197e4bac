package scrape

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// articleTypes qualify a JSON-LD node as an article. Matching is a
// case-insensitive substring test against the node's @type.
var articleTypes = []string{"article", "newsarticle", "blogposting"}

// extractJSONLD collects posts from every ld+json script block in the
// page. Malformed blocks are skipped silently.
func extractJSONLD(doc *goquery.Document, src feeds.Source) []feeds.Post {
	var posts []feeds.Post
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return
		}
		for _, node := range flattenNodes(raw) {
			if post, ok := postFromNode(node, src); ok {
				posts = append(posts, post)
			}
		}
	})
	return posts
}

// flattenNodes expands a decoded ld+json value into candidate objects:
// a bare object, a list of objects, and any @graph members.
func flattenNodes(raw any) []map[string]any {
	var nodes []map[string]any
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case []any:
			for _, el := range t {
				walk(el)
			}
		case map[string]any:
			nodes = append(nodes, t)
			if graph, ok := t["@graph"].([]any); ok {
				for _, el := range graph {
					walk(el)
				}
			}
		}
	}
	walk(raw)
	return nodes
}

func postFromNode(node map[string]any, src feeds.Source) (feeds.Post, bool) {
	if !isArticleType(node["@type"]) {
		return feeds.Post{}, false
	}

	title := feeds.NormalizeSpace(stringField(node, "headline", "name"))
	if !feeds.IsArticleTitle(title) {
		return feeds.Post{}, false
	}

	link := feeds.ResolveLink(stringField(node, "url"), src)
	if !feeds.IsArticleLink(link, src) {
		return feeds.Post{}, false
	}

	return feeds.Post{
		Company:        src.Company,
		Title:          title,
		Link:           link,
		Published:      feeds.ResolveTime(nil, stringField(node, "datePublished", "dateCreated")),
		Summary:        feeds.NormalizeSpace(stringField(node, "description")),
		Image:          feeds.ResolveLink(imageField(node["image"]), src),
		SourceHomepage: src.Homepage,
	}, true
}

// isArticleType matches @type whether it is a string or a list.
func isArticleType(v any) bool {
	match := func(s string) bool {
		s = strings.ToLower(s)
		for _, t := range articleTypes {
			if strings.Contains(s, t) {
				return true
			}
		}
		return false
	}
	switch t := v.(type) {
	case string:
		return match(t)
	case []any:
		for _, el := range t {
			if s, ok := el.(string); ok && match(s) {
				return true
			}
		}
	}
	return false
}

// stringField returns the first non-empty string among the named keys.
func stringField(node map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := node[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// imageField handles the three shapes an ld+json image takes: a URL
// string, a list whose first element is used, or an object with a url.
func imageField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			return imageField(t[0])
		}
	case map[string]any:
		if s, ok := t["url"].(string); ok {
			return s
		}
	}
	return ""
}
