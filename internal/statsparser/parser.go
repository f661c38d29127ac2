// Package statsparser scrapes follower counts from public social
// profile pages. Counts land in the og:description meta tag on all
// three platforms ("1.2M Followers, ..."), so one pass covers them.
package statsparser

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/creator-marketplace/backend/internal/models"
)

type ProfileStats struct {
	Platform  string    `json:"platform"`
	Handle    string    `json:"handle"`
	Followers *int      `json:"followers,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Parser struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewParser(timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	return &Parser{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

func profileURL(platform, handle string) (string, error) {
	switch platform {
	case models.PlatformInstagram:
		return fmt.Sprintf("https://www.instagram.com/%s/", handle), nil
	case models.PlatformTiktok:
		return fmt.Sprintf("https://www.tiktok.com/@%s", handle), nil
	case models.PlatformYoutube:
		return fmt.Sprintf("https://www.youtube.com/@%s", handle), nil
	default:
		return "", fmt.Errorf("unknown platform %q", platform)
	}
}

// FetchFollowers loads the public profile page and extracts the follower
// count. Transient failures are retried with a linear backoff.
func (p *Parser) FetchFollowers(ctx context.Context, platform, handle string) (*ProfileStats, error) {
	handle = models.NormalizeHandle(handle)
	url, err := profileURL(platform, handle)
	if err != nil {
		return nil, err
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, lastErr
	}

	stats := &ProfileStats{
		Platform:  platform,
		Handle:    handle,
		FetchedAt: time.Now(),
	}

	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		if n := extractFollowers(desc); n > 0 {
			stats.Followers = &n
		}
	}
	if stats.Followers == nil {
		if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			if n := extractFollowers(desc); n > 0 {
				stats.Followers = &n
			}
		}
	}
	return stats, nil
}

var followersRE = regexp.MustCompile(`(?i)([\d.,]+\s*[KkMm]?)\s*(followers|subscribers|fans)`)

// extractFollowers pulls the count out of description text like
// "1.2M Followers, 340 Following, 512 Posts".
func extractFollowers(text string) int {
	m := followersRE.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return parseCount(m[1])
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// parseCount handles plain numbers, thousands separators and K/M
// suffixes.
func parseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}
