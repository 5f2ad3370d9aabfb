package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/poopdl/poopdl/internal/models"
)

// Extractor turns normalized markup into structured file fields. The
// document-model implementation below can be swapped for another matching
// strategy without touching the pipeline; miss semantics (skip, don't abort)
// must be preserved.
type Extractor interface {
	ExtractSingle(markup, pageURL, domain string) (models.FileItem, bool)
	ExtractMany(markup, domain string) []models.FileItem
	DiscoverPages(markup string) []string
}

type documentExtractor struct{}

func NewExtractor() Extractor {
	return documentExtractor{}
}

// ExtractSingle pulls the title and thumbnail for a single-file page. Both
// fields must be present or no item is produced. The id is derived from the
// final path segment of pageURL.
func (documentExtractor) ExtractSingle(markup, pageURL, domain string) (models.FileItem, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return models.FileItem{}, false
	}

	name := strings.TrimSpace(doc.Find("h4").First().Text())
	image, _ := doc.Find("img[src]").First().Attr("src")
	if name == "" || image == "" {
		return models.FileItem{}, false
	}

	return models.FileItem{
		Domain: domain,
		ID:     LastPathSegment(pageURL),
		Name:   name,
		Image:  image,
	}, true
}

// ExtractMany scans listing markup for media blocks. A div containing a
// strong element is treated as a candidate; a candidate missing its href,
// title or image is skipped without aborting the scan, since listing pages
// mix media blocks with unrelated UI blocks.
func (documentExtractor) ExtractMany(markup, domain string) []models.FileItem {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var items []models.FileItem
	doc.Find("div").Each(func(_ int, block *goquery.Selection) {
		strong := block.Find("strong").First()
		if strong.Length() == 0 {
			return
		}

		href, hasHref := block.Find("a[href]").First().Attr("href")
		name := strings.TrimSpace(strong.Text())
		image, hasImage := block.Find("img[src]").First().Attr("src")
		if !hasHref || !hasImage || name == "" {
			return
		}

		items = append(items, models.FileItem{
			Domain: domain,
			ID:     LastPathSegment(href),
			Name:   name,
			Image:  image,
		})
	})

	return items
}

// DiscoverPages collects pagination hrefs from a folder page. Hrefs are
// returned as found; the pipeline resolves them against the live origin and
// deduplicates before walking.
func (documentExtractor) DiscoverPages(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var hrefs []string
	doc.Find("a.page-link[href]").Each(func(_ int, link *goquery.Selection) {
		if href, ok := link.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs
}
