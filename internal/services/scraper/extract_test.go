package scraper

import (
	"testing"
)

func TestExtractSingle(t *testing.T) {
	extractor := NewExtractor()

	t.Run("Valid page", func(t *testing.T) {
		markup := NormalizeMarkup(`
			<html><body>
			<div class="card"><h4> My Video </h4></div>
			<img src="http://x/y.jpg">
			</body></html>`)

		item, found := extractor.ExtractSingle(markup, "https://poop.run/d/LPxbX8Mn4KZ", "poop.run")
		if !found {
			t.Fatal("expected extraction to succeed")
		}
		if item.ID != "LPxbX8Mn4KZ" {
			t.Errorf("id = %q, want %q", item.ID, "LPxbX8Mn4KZ")
		}
		if item.Name != "My Video" {
			t.Errorf("name = %q, want %q", item.Name, "My Video")
		}
		if item.Image != "http://x/y.jpg" {
			t.Errorf("image = %q, want %q", item.Image, "http://x/y.jpg")
		}
		if item.Domain != "poop.run" {
			t.Errorf("domain = %q, want %q", item.Domain, "poop.run")
		}
	})

	t.Run("Missing title", func(t *testing.T) {
		markup := NormalizeMarkup(`<html><body><img src="http://x/y.jpg"></body></html>`)
		if _, found := extractor.ExtractSingle(markup, "https://poop.run/d/abc", "poop.run"); found {
			t.Error("extraction without a title should miss")
		}
	})

	t.Run("Missing image", func(t *testing.T) {
		markup := NormalizeMarkup(`<html><body><h4>My Video</h4></body></html>`)
		if _, found := extractor.ExtractSingle(markup, "https://poop.run/d/abc", "poop.run"); found {
			t.Error("extraction without an image should miss")
		}
	})
}

func TestExtractManyPartialFailureTolerance(t *testing.T) {
	extractor := NewExtractor()

	// Four candidate blocks: one complete, one missing its href, one missing
	// its image, one unrelated UI block without a strong marker.
	markup := NormalizeMarkup(`
		<html><body>
		<div class="item"><a href="/d/id1"><strong>Video One</strong><img src="/t1.jpg"></a></div>
		<div class="item"><strong>No Link</strong><img src="/t2.jpg"></div>
		<div class="item"><a href="/d/id3"><strong>No Image</strong></a></div>
		<div class="footer"><a href="/about">About</a></div>
		</body></html>`)

	items := extractor.ExtractMany(markup, "poop.run")
	if len(items) != 1 {
		t.Fatalf("expected 1 item from 1 complete block, got %d", len(items))
	}
	if items[0].ID != "id1" || items[0].Name != "Video One" || items[0].Image != "/t1.jpg" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestExtractManyOrder(t *testing.T) {
	extractor := NewExtractor()

	markup := NormalizeMarkup(`
		<html><body>
		<div><a href="/d/id1"><strong>First</strong><img src="/t1.jpg"></a></div>
		<div><a href="/d/id2"><strong>Second</strong><img src="/t2.jpg"></a></div>
		<div><a href="/d/id3"><strong>Third</strong><img src="/t3.jpg"></a></div>
		</body></html>`)

	items := extractor.ExtractMany(markup, "poop.run")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"id1", "id2", "id3"} {
		if items[i].ID != want {
			t.Errorf("item %d id = %q, want %q", i, items[i].ID, want)
		}
	}
}

func TestDiscoverPages(t *testing.T) {
	extractor := NewExtractor()

	markup := NormalizeMarkup(`
		<html><body>
		<a class="page-link" href="/f/abc?page=1">1</a>
		<a class="page-link" href="/f/abc?page=2">2</a>
		<a class="other" href="/f/abc?page=3">3</a>
		</body></html>`)

	pages := extractor.DiscoverPages(markup)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pagination hrefs, got %d: %v", len(pages), pages)
	}
	if pages[0] != "/f/abc?page=1" || pages[1] != "/f/abc?page=2" {
		t.Errorf("unexpected hrefs: %v", pages)
	}
}
