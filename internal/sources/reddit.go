package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const selftextLimit = 500

// RedditCollector fetches hot listings from UK subreddits.
type RedditCollector struct {
	clientID     string
	clientSecret string
	userAgent    string
	subreddits   []string
	perCommunity int
	topLimit     int
	client       *resty.Client
	accessToken  string
}

type redditAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type redditListingResponse struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	Created     float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
}

// NewRedditCollector creates a Reddit collector for the given
// subreddit set. The first subreddit is the flagship community whose
// top posts fill the snapshot's convenience list.
func NewRedditCollector(clientID, clientSecret, userAgent string, subreddits []string, perCommunity, topLimit int) *RedditCollector {
	return &RedditCollector{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		subreddits:   subreddits,
		perCommunity: perCommunity,
		topLimit:     topLimit,
		client:       resty.New().SetTimeout(30 * time.Second),
	}
}

func (r *RedditCollector) GetName() string {
	return "reddit"
}

func (r *RedditCollector) IsEnabled() bool {
	return r.clientID != "" && r.clientSecret != ""
}

func (r *RedditCollector) Collect(ctx context.Context, snap *models.Snapshot) error {
	if !r.IsEnabled() {
		logrus.Debug("Reddit collector disabled - missing credentials")
		return nil
	}

	if err := r.authenticate(ctx); err != nil {
		return fmt.Errorf("reddit authentication failed: %w", err)
	}

	social := &models.SocialData{
		ByCommunity: make(map[string][]models.SocialPost),
	}

	for _, subreddit := range r.subreddits {
		posts, err := r.fetchHot(ctx, subreddit, r.perCommunity)
		if err != nil {
			logrus.Errorf("Failed to fetch r/%s: %v", subreddit, err)
			social.ByCommunity[subreddit] = []models.SocialPost{}
			continue
		}
		social.ByCommunity[subreddit] = posts
	}

	if len(r.subreddits) > 0 {
		top, err := r.fetchHot(ctx, r.subreddits[0], r.topLimit)
		if err != nil {
			logrus.Errorf("Failed to fetch top posts from r/%s: %v", r.subreddits[0], err)
		} else {
			social.Top = top
		}
	}

	snap.Social = social
	return nil
}

func (r *RedditCollector) authenticate(ctx context.Context) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", r.userAgent).
		SetBasicAuth(r.clientID, r.clientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
		}).
		Post("https://www.reddit.com/api/v1/access_token")

	if err != nil {
		return err
	}

	var authResp redditAuthResponse
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		return err
	}
	if authResp.AccessToken == "" {
		return fmt.Errorf("reddit returned no access token (status %d)", resp.StatusCode())
	}

	r.accessToken = authResp.AccessToken
	return nil
}

func (r *RedditCollector) fetchHot(ctx context.Context, subreddit string, limit int) ([]models.SocialPost, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", r.userAgent).
		SetAuthToken(r.accessToken).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		Get(fmt.Sprintf("https://oauth.reddit.com/r/%s/hot", subreddit))

	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("reddit listing returned status %d", resp.StatusCode())
	}

	var listing redditListingResponse
	if err := json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, err
	}

	posts := make([]models.SocialPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post := child.Data
		text := post.Selftext
		if len(text) > selftextLimit {
			text = text[:selftextLimit]
		}
		posts = append(posts, models.SocialPost{
			Title:      post.Title,
			Community:  post.Subreddit,
			Score:      post.Score,
			Comments:   post.NumComments,
			Author:     post.Author,
			Created:    time.Unix(int64(post.Created), 0).UTC(),
			URL:        "https://reddit.com" + post.Permalink,
			Text:       text,
			Source:     fmt.Sprintf("Reddit r/%s", post.Subreddit),
			SourceType: models.SourceTypeSocial,
		})
	}

	return posts, nil
}
