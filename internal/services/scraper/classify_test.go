package scraper

import (
	"testing"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected PageType
	}{
		{
			name:     "Single file URL",
			url:      "https://poop.vin/d/LPxbX8Mn4KZ",
			expected: PageTypeSingle,
		},
		{
			name:     "Folder URL",
			url:      "https://poop.pm/f/t8e12zcx7ra",
			expected: PageTypeFolder,
		},
		{
			name:     "Trending URL",
			url:      "https://poop.run/top?p=3",
			expected: PageTypeTrending,
		},
		{
			name:     "Blocked embed URL",
			url:      "https://poop.com/e/AbC123",
			expected: PageTypeBlocked,
		},
		{
			name:     "Uppercase segment",
			url:      "https://poop.run/D/LPxbX8Mn4KZ",
			expected: PageTypeSingle,
		},
		{
			name:     "Unknown segment",
			url:      "https://poop.run/about",
			expected: PageTypeNone,
		},
		{
			name:     "Root URL",
			url:      "https://poop.run/",
			expected: PageTypeNone,
		},
		{
			name:     "Unparseable URL",
			url:      "://not-a-url",
			expected: PageTypeNone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.url); got != tc.expected {
				t.Errorf("Classify(%q) = %q, want %q", tc.url, got, tc.expected)
			}
		})
	}
}

func TestLastPathSegment(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "Plain file URL",
			url:      "https://poop.vin/d/LPxbX8Mn4KZ",
			expected: "LPxbX8Mn4KZ",
		},
		{
			name:     "Query string stripped",
			url:      "https://poop.vin/d/LPxbX8Mn4KZ?ref=home",
			expected: "LPxbX8Mn4KZ",
		},
		{
			name:     "Trailing slash",
			url:      "https://poop.vin/d/LPxbX8Mn4KZ/",
			expected: "LPxbX8Mn4KZ",
		},
		{
			name:     "Relative href",
			url:      "/d/sjg5d1abyi5e",
			expected: "sjg5d1abyi5e",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LastPathSegment(tc.url); got != tc.expected {
				t.Errorf("LastPathSegment(%q) = %q, want %q", tc.url, got, tc.expected)
			}
		})
	}
}
