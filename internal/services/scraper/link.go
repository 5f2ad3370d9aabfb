package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/poopdl/poopdl/internal/config"
	"github.com/poopdl/poopdl/internal/utils"
)

var (
	fetchURLRegex  = regexp.MustCompile(`returnfetch\("(.*?)"`)
	authTokenRegex = regexp.MustCompile(`"Authorization":"(.*?)"`)
)

// LinkService resolves (domain, id) pairs into final direct links via the
// target site's three-step token exchange. It shares nothing with the
// file-listing pipeline except the HTTP identity shape.
type LinkService struct {
	cfg    *config.ScraperConfig
	scheme string
}

func NewLinkService(cfg *config.ScraperConfig) *LinkService {
	return &LinkService{
		cfg:    cfg,
		scheme: "https",
	}
}

type directLinkResponse struct {
	DirectLink string `json:"direct_link"`
}

// GetLink returns the direct link for id on domain, or "" when any step of
// the exchange comes up empty. At most three network calls are made, with no
// retries between steps; errors never escape past this boundary.
func (ls *LinkService) GetLink(ctx context.Context, domain, id string) string {
	session := NewSession(ls.cfg)

	// Step 1: find the live location of the token page.
	tokenPageURL, err := session.Resolve(ctx, fmt.Sprintf("%s://%s/p0?id=%s", ls.scheme, domain, id))
	if err != nil {
		utils.LogError(ctx, "Failed to resolve token page", err, utils.Fields{"domain": domain, "id": id})
		return ""
	}

	// Step 2: pull the secondary fetch URL and authorization token out of
	// the page script.
	fetchURL, authToken, ok := ls.extractToken(ctx, session, tokenPageURL, id)
	if !ok {
		return ""
	}

	// Step 3: exchange the token for the direct link.
	headers := map[string]string{
		"Authorization": authToken,
		"origin":        fmt.Sprintf("%s://%s", ls.scheme, domain),
	}
	resp, err := session.Get(ctx, fetchURL, headers)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch direct link", err, utils.Fields{"url": fetchURL, "id": id})
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogWarn(ctx, "Non-200 status from link endpoint", utils.Fields{
			"url":    fetchURL,
			"status": resp.StatusCode,
		})
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		utils.LogError(ctx, "Failed to read link response", err, utils.Fields{"url": fetchURL})
		return ""
	}

	var direct directLinkResponse
	if err := json.Unmarshal(body, &direct); err != nil {
		utils.LogError(ctx, "Invalid JSON from link endpoint", err, utils.Fields{"url": fetchURL})
		return ""
	}

	if direct.DirectLink == "" {
		utils.LogWarn(ctx, "No direct_link in response", utils.Fields{"id": id})
	}
	return direct.DirectLink
}

// extractToken fetches the token page and pattern-matches the secondary
// fetch URL and authorization token out of its script. Both must be present.
func (ls *LinkService) extractToken(ctx context.Context, session *Session, tokenPageURL, id string) (string, string, bool) {
	resp, err := session.Get(ctx, tokenPageURL, nil)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch token page", err, utils.Fields{"url": tokenPageURL, "id": id})
		return "", "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogWarn(ctx, "Non-200 status from token page", utils.Fields{
			"url":    tokenPageURL,
			"status": resp.StatusCode,
		})
		return "", "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		utils.LogError(ctx, "Failed to read token page", err, utils.Fields{"url": tokenPageURL})
		return "", "", false
	}

	script := NormalizeScript(string(body))
	urlMatch := fetchURLRegex.FindStringSubmatch(script)
	authMatch := authTokenRegex.FindStringSubmatch(script)
	if urlMatch == nil || authMatch == nil {
		utils.LogWarn(ctx, "Could not extract fetch URL or authorization token", utils.Fields{"id": id})
		return "", "", false
	}

	return strings.TrimSpace(urlMatch[1]), strings.TrimSpace(authMatch[1]), true
}
