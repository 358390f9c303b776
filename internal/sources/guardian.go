package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

// GuardianCollector fetches UK news from the Guardian Open Platform.
type GuardianCollector struct {
	apiKey      string
	sections    []string
	latestLimit int
	perSection  int
	client      *resty.Client
}

type guardianSearchResponse struct {
	Response struct {
		Results []guardianArticle `json:"results"`
	} `json:"response"`
}

type guardianArticle struct {
	WebTitle           string `json:"webTitle"`
	SectionName        string `json:"sectionName"`
	WebPublicationDate string `json:"webPublicationDate"`
	WebURL             string `json:"webUrl"`
	Fields             struct {
		TrailText string `json:"trailText"`
	} `json:"fields"`
}

// NewGuardianCollector creates a Guardian news collector.
func NewGuardianCollector(apiKey string, sections []string, latestLimit, perSection int) *GuardianCollector {
	return &GuardianCollector{
		apiKey:      apiKey,
		sections:    sections,
		latestLimit: latestLimit,
		perSection:  perSection,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "culture-pulse/1.0"),
	}
}

func (g *GuardianCollector) GetName() string {
	return "guardian"
}

func (g *GuardianCollector) IsEnabled() bool {
	return g.apiKey != ""
}

func (g *GuardianCollector) Collect(ctx context.Context, snap *models.Snapshot) error {
	if !g.IsEnabled() {
		logrus.Debug("Guardian collector disabled - missing API key")
		return nil
	}

	news := &models.NewsData{
		BySection: make(map[string][]models.NewsArticle),
	}

	latest, err := g.search(ctx, "", g.latestLimit)
	if err != nil {
		logrus.Errorf("Failed to fetch latest Guardian news: %v", err)
	} else {
		news.Latest = latest
	}

	for _, section := range g.sections {
		articles, err := g.search(ctx, section, g.perSection)
		if err != nil {
			logrus.Errorf("Failed to fetch Guardian section %s: %v", section, err)
			news.BySection[section] = []models.NewsArticle{}
			continue
		}
		news.BySection[section] = articles
	}

	snap.News = news
	return nil
}

func (g *GuardianCollector) search(ctx context.Context, section string, pageSize int) ([]models.NewsArticle, error) {
	req := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-key":     g.apiKey,
			"q":           "UK",
			"page-size":   strconv.Itoa(pageSize),
			"order-by":    "newest",
			"show-fields": "headline,trailText",
		})
	if section != "" {
		req.SetQueryParam("section", section)
	}

	resp, err := req.Get("https://content.guardianapis.com/search")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("guardian API returned status %d", resp.StatusCode())
	}

	var searchResp guardianSearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, err
	}

	articles := make([]models.NewsArticle, 0, len(searchResp.Response.Results))
	for _, result := range searchResp.Response.Results {
		published, _ := time.Parse(time.RFC3339, result.WebPublicationDate)
		articles = append(articles, models.NewsArticle{
			Title:       result.WebTitle,
			Section:     result.SectionName,
			Published:   published,
			URL:         result.WebURL,
			Description: result.Fields.TrailText,
			Source:      "The Guardian - " + result.SectionName,
			SourceType:  models.SourceTypeNews,
		})
	}

	return articles, nil
}
