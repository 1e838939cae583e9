package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Balerion769/Disaster-Response-Platform/internal/config"
	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

// FemaScraper pulls official news items off the FEMA news-releases
// page.
type FemaScraper struct {
	httpClient *http.Client
	sourceURL  string
	maxItems   int
	logger     *slog.Logger
}

func NewFemaScraper(cfg config.ScraperConfig, logger *slog.Logger) *FemaScraper {
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = 5
	}
	return &FemaScraper{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sourceURL:  cfg.URL,
		maxItems:   maxItems,
		logger:     logger,
	}
}

// Fetch scrapes up to maxItems updates. Items without a title or link
// are skipped.
func (s *FemaScraper) Fetch(ctx context.Context) ([]domain.OfficialUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build scrape request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.sourceURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse news page: %w", err)
	}

	updates := make([]domain.OfficialUpdate, 0, s.maxItems)
	doc.Find(".usa-collection__item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		title := strings.TrimSpace(item.Find("h3 a").First().Text())
		href, _ := item.Find("h3 a").First().Attr("href")
		summary := strings.TrimSpace(item.Find("p").First().Text())

		if title == "" || href == "" {
			return true
		}

		updates = append(updates, domain.OfficialUpdate{
			Title:   title,
			Link:    s.absoluteLink(href),
			Summary: summary,
		})
		return len(updates) < s.maxItems
	})

	s.logger.Debug("official updates scraped", slog.Int("count", len(updates)))
	return updates, nil
}

// absoluteLink resolves a relative article href against the source
// page's host.
func (s *FemaScraper) absoluteLink(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base, err := url.Parse(s.sourceURL)
	if err != nil {
		return href
	}
	return base.Scheme + "://" + base.Host + href
}
