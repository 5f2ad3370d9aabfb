package scraper

import (
	"net/url"
	"strings"
)

// PageType is the resolution flow selected for a resolved URL.
type PageType string

const (
	PageTypeSingle   PageType = "single"
	PageTypeFolder   PageType = "folder"
	PageTypeTrending PageType = "trending"
	PageTypeBlocked  PageType = "blocked"
	PageTypeNone     PageType = "none"
)

// Classify decides the resolution flow purely from the first path segment of
// rawURL. Unrecognized segments map to PageTypeNone, which the pipeline
// treats as a silent no-op to match the target site's behavior on unknown
// paths.
func Classify(rawURL string) PageType {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PageTypeNone
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return PageTypeNone
	}

	switch strings.ToLower(segments[0]) {
	case "d":
		return PageTypeSingle
	case "f":
		return PageTypeFolder
	case "top":
		return PageTypeTrending
	case "e":
		return PageTypeBlocked
	default:
		return PageTypeNone
	}
}

// LastPathSegment returns the final path segment of rawURL with any query
// string stripped. File ids on the target site live in this position.
func LastPathSegment(rawURL string) string {
	s := rawURL
	if idx := strings.Index(s, "?"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSuffix(s, "/")
	parts := strings.Split(s, "/")
	return parts[len(parts)-1]
}
