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

const descriptionLimit = 300

// YouTubeCollector fetches the trending chart for the UK region.
type YouTubeCollector struct {
	apiKey string
	limit  int
	client *resty.Client
}

type youTubeVideosResponse struct {
	Items []youTubeVideo `json:"items"`
}

type youTubeVideo struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

// NewYouTubeCollector creates a YouTube trending collector.
func NewYouTubeCollector(apiKey string, limit int) *YouTubeCollector {
	return &YouTubeCollector{
		apiKey: apiKey,
		limit:  limit,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "culture-pulse/1.0"),
	}
}

func (y *YouTubeCollector) GetName() string {
	return "youtube"
}

func (y *YouTubeCollector) IsEnabled() bool {
	return y.apiKey != ""
}

func (y *YouTubeCollector) Collect(ctx context.Context, snap *models.Snapshot) error {
	if !y.IsEnabled() {
		logrus.Debug("YouTube collector disabled - missing API key")
		return nil
	}

	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet,statistics",
			"chart":      "mostPopular",
			"regionCode": "GB",
			"maxResults": strconv.Itoa(y.limit),
			"key":        y.apiKey,
		}).
		Get("https://www.googleapis.com/youtube/v3/videos")

	if err != nil {
		return fmt.Errorf("youtube trending request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("youtube API returned status %d", resp.StatusCode())
	}

	var videosResp youTubeVideosResponse
	if err := json.Unmarshal(resp.Body(), &videosResp); err != nil {
		return fmt.Errorf("failed to parse youtube response: %w", err)
	}

	items := make([]models.VideoItem, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		published, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		description := item.Snippet.Description
		if len(description) > descriptionLimit {
			description = description[:descriptionLimit]
		}
		items = append(items, models.VideoItem{
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			Views:       atoiOrZero(item.Statistics.ViewCount),
			Likes:       atoiOrZero(item.Statistics.LikeCount),
			Comments:    atoiOrZero(item.Statistics.CommentCount),
			Published:   published,
			Description: description,
			URL:         "https://youtube.com/watch?v=" + item.ID,
			Source:      "YouTube - " + item.Snippet.ChannelTitle,
			SourceType:  models.SourceTypeVideo,
		})
	}

	snap.Video = &models.VideoData{Items: items}
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
