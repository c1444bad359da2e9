package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/PuerkitoBio/goquery"
)

type ImportService struct {
	HTTPClient *http.Client
}

// NewImportService initializes a new ImportService
func NewImportService() *ImportService {
	return &ImportService{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ImportFromWebsite fetches a business's website and prefills an onboarding
// draft from its title, meta description and contact links
func (s *ImportService) ImportFromWebsite(ctx context.Context, rawURL string) (*models.BusinessProfileDraft, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid website URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid website URL")
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadGateway, "Failed to fetch website")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewCustomError(http.StatusBadGateway, "Website responded with an error")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadGateway, "Failed to parse website")
	}

	draft := &models.BusinessProfileDraft{
		Website: parsed.String(),
		Emails:  []string{},
		Phones:  []string{},
	}

	draft.Name = strings.TrimSpace(doc.Find("title").First().Text())
	if ogTitle, exists := doc.Find(`meta[property="og:site_name"]`).Attr("content"); exists && ogTitle != "" {
		draft.Name = strings.TrimSpace(ogTitle)
	}

	if description, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
		draft.Description = strings.TrimSpace(description)
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		switch {
		case strings.HasPrefix(href, "mailto:"):
			email := strings.TrimPrefix(href, "mailto:")
			if at := strings.Index(email, "?"); at >= 0 {
				email = email[:at]
			}
			if email != "" && !seen["m"+email] {
				seen["m"+email] = true
				draft.Emails = append(draft.Emails, email)
			}
		case strings.HasPrefix(href, "tel:"):
			phone := strings.TrimPrefix(href, "tel:")
			if phone != "" && !seen["t"+phone] {
				seen["t"+phone] = true
				draft.Phones = append(draft.Phones, phone)
			}
		}
	})

	return draft, nil
}
