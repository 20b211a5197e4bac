package feeds

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup reduces an HTML fragment to whitespace-normalized plain
// text. Non-HTML input passes through with normalization only.
func StripMarkup(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return NormalizeSpace(s)
	}
	return NormalizeSpace(doc.Text())
}

// FirstImageSrc returns the src of the first <img> in an HTML fragment,
// or "" if the fragment has none.
func FirstImageSrc(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}
