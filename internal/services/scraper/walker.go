package scraper

import (
	"context"
	"sync"

	"github.com/poopdl/poopdl/internal/utils"
)

// Walker fetches independent listing pages with a bounded worker pool. A
// page that fails to fetch is skipped; the remaining pages are still
// visited, so one dead page never empties the whole listing.
type Walker struct {
	session   *Session
	semaphore chan struct{}
}

func NewWalker(session *Session, concurrency int) *Walker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Walker{
		session:   session,
		semaphore: make(chan struct{}, concurrency),
	}
}

// Walk fetches every URL exactly once and hands normalized markup to handle.
// handle may be called from multiple goroutines; with concurrency 1 pages
// are visited sequentially in the given order.
func (w *Walker) Walk(ctx context.Context, pageURLs []string, handle func(markup string)) {
	if cap(w.semaphore) == 1 {
		for _, pageURL := range pageURLs {
			w.visit(ctx, pageURL, handle)
		}
		return
	}

	var wg sync.WaitGroup
	for _, pageURL := range pageURLs {
		wg.Add(1)
		go func(pageURL string) {
			defer wg.Done()

			// Acquire semaphore
			w.semaphore <- struct{}{}
			defer func() { <-w.semaphore }()

			w.visit(ctx, pageURL, handle)
		}(pageURL)
	}
	wg.Wait()
}

func (w *Walker) visit(ctx context.Context, pageURL string, handle func(markup string)) {
	markup, ok := w.session.FetchPage(ctx, pageURL)
	if !ok {
		utils.LogWarn(ctx, "Skipping listing page", utils.Fields{"url": pageURL})
		return
	}
	handle(markup)
}
