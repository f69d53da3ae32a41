package inspector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta holds metadata extracted from a rendered HTML document
type PageMeta struct {
	Title       string
	Description string
}

// ExtractPageMeta parses rendered HTML and pulls out the document title
// and meta description. Parse failures yield an empty PageMeta; metadata
// is best-effort and never fails the surrounding operation.
func ExtractPageMeta(htmlContent string) PageMeta {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return PageMeta{}
	}

	meta := PageMeta{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if description, exists := doc.Find(`meta[name="description"]`).First().Attr("content"); exists {
		meta.Description = strings.TrimSpace(description)
	}

	return meta
}
