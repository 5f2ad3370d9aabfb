package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/poopdl/poopdl/internal/config"
	"github.com/poopdl/poopdl/internal/models"
	"github.com/poopdl/poopdl/internal/utils"
)

// FileService resolves share URLs into deduplicated file metadata listings.
// Each call gets its own Session and Registry; nothing is shared between
// concurrent calls.
type FileService struct {
	cfg       *config.ScraperConfig
	extractor Extractor
	scheme    string
}

func NewFileService(cfg *config.ScraperConfig) *FileService {
	return &FileService{
		cfg:       cfg,
		extractor: NewExtractor(),
		scheme:    "https",
	}
}

// GetAllFiles resolves rawURL into the list of files it references. Every
// failure path degrades to an empty list with a log entry; errors never
// escape past this boundary.
func (fs *FileService) GetAllFiles(ctx context.Context, rawURL string) []models.FileItem {
	session := NewSession(fs.cfg)
	registry := NewRegistry()
	return fs.resolve(ctx, session, registry, rawURL, false)
}

func (fs *FileService) resolve(ctx context.Context, session *Session, registry *Registry, rawURL string, rebuilt bool) []models.FileItem {
	// Blocked/embed URLs are rebuilt once against the canonical single-file
	// endpoint on the default domain. At most one rebuild: if the canonical
	// URL classifies as blocked again the call gives up.
	if Classify(rawURL) == PageTypeBlocked {
		if rebuilt {
			utils.LogWarn(ctx, "URL still blocked after rebuild", utils.Fields{"url": rawURL})
			return nil
		}
		id := strings.ToLower(LastPathSegment(rawURL))
		canonical := fmt.Sprintf("%s://%s/d/%s", fs.scheme, fs.cfg.DefaultDomain, id)
		utils.LogInfo(ctx, "Rebuilding blocked URL", utils.Fields{"url": rawURL, "canonical": canonical})
		return fs.resolve(ctx, session, registry, canonical, true)
	}

	finalURL, err := session.Resolve(ctx, rawURL)
	if err != nil {
		utils.LogError(ctx, "Failed to resolve redirect", err, utils.Fields{"url": rawURL})
		return nil
	}

	baseURL := finalURL
	if idx := strings.Index(baseURL, "?"); idx != -1 {
		baseURL = baseURL[:idx]
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		utils.LogError(ctx, "Unusable resolved URL", err, utils.Fields{"url": baseURL})
		return nil
	}
	scheme := parsed.Scheme
	if scheme == "" {
		scheme = fs.scheme
	}
	domain := parsed.Host

	markup, ok := session.FetchPage(ctx, baseURL)
	if !ok {
		return nil
	}

	var (
		mu    sync.Mutex
		items []models.FileItem
	)
	admit := func(candidates []models.FileItem) {
		mu.Lock()
		defer mu.Unlock()
		for _, item := range candidates {
			if registry.Admit(item.ID) {
				items = append(items, item)
			}
		}
	}

	switch Classify(baseURL) {
	case PageTypeSingle:
		item, found := fs.extractor.ExtractSingle(markup, baseURL, domain)
		if !found {
			utils.LogWarn(ctx, "Could not extract name or image", utils.Fields{"url": baseURL})
			return nil
		}
		admit([]models.FileItem{item})

	case PageTypeFolder:
		pages := fs.pageURLs(scheme, domain, fs.extractor.DiscoverPages(markup))
		walker := NewWalker(session, fs.cfg.WalkerConcurrency)
		walker.Walk(ctx, pages, func(pageMarkup string) {
			admit(fs.extractor.ExtractMany(pageMarkup, domain))
		})

	case PageTypeTrending:
		pages := make([]string, 0, fs.cfg.TrendingPages)
		for n := 1; n <= fs.cfg.TrendingPages; n++ {
			pages = append(pages, fmt.Sprintf("%s://%s/top?p=%d", scheme, domain, n))
		}
		walker := NewWalker(session, fs.cfg.WalkerConcurrency)
		walker.Walk(ctx, pages, func(pageMarkup string) {
			admit(fs.extractor.ExtractMany(pageMarkup, domain))
		})

	default:
		// Unknown path shapes return empty rather than failing, matching
		// the target site's own behavior.
		utils.LogDebug(ctx, "Unrecognized URL type", utils.Fields{"url": baseURL})
	}

	return items
}

// pageURLs resolves discovered pagination hrefs against the live origin and
// removes duplicates while keeping discovery order.
func (fs *FileService) pageURLs(scheme, domain string, hrefs []string) []string {
	seen := make(map[string]struct{}, len(hrefs))
	pages := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		pageURL := href
		if strings.HasPrefix(href, "/") {
			pageURL = fmt.Sprintf("%s://%s%s", scheme, domain, href)
		}
		if _, ok := seen[pageURL]; ok {
			continue
		}
		seen[pageURL] = struct{}{}
		pages = append(pages, pageURL)
	}
	return pages
}
