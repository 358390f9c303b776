package models

import "time"

// Source type labels used for citation formatting.
const (
	SourceTypeSocial = "social_media"
	SourceTypeNews   = "news_media"
	SourceTypeVideo  = "video_platform"
)

// SocialPost is a single forum post (Reddit).
type SocialPost struct {
	Title      string    `json:"title"`
	Community  string    `json:"community"`
	Score      int       `json:"score"`
	Comments   int       `json:"comments"`
	Author     string    `json:"author,omitempty"`
	Created    time.Time `json:"created"`
	URL        string    `json:"url"`
	Text       string    `json:"text,omitempty"` // selftext, truncated at collection time
	Source     string    `json:"source,omitempty"`
	SourceType string    `json:"source_type,omitempty"`
}

// VideoItem is a single trending video (YouTube).
type VideoItem struct {
	Title       string    `json:"title"`
	Channel     string    `json:"channel"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Published   time.Time `json:"published"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Source      string    `json:"source,omitempty"`
	SourceType  string    `json:"source_type,omitempty"`
}

// NewsArticle is a single news item (The Guardian).
type NewsArticle struct {
	Title       string    `json:"title"`
	Section     string    `json:"section"`
	Published   time.Time `json:"published"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source,omitempty"`
	SourceType  string    `json:"source_type,omitempty"`
}

// SocialData holds forum posts partitioned by community, plus a
// convenience list of top posts from the flagship community.
type SocialData struct {
	ByCommunity map[string][]SocialPost `json:"by_community"`
	Top         []SocialPost            `json:"top,omitempty"`
}

// VideoData holds the trending video list.
type VideoData struct {
	Items []VideoItem `json:"items"`
}

// NewsData holds articles partitioned by section, plus the overall
// latest articles.
type NewsData struct {
	BySection map[string][]NewsArticle `json:"by_section"`
	Latest    []NewsArticle            `json:"latest,omitempty"`
}

// Snapshot is one fetched batch of records across platforms at a point
// in time. Any platform may be nil; the synthesis engine treats a
// missing platform as empty, never as an error.
type Snapshot struct {
	Timestamp time.Time   `json:"timestamp"`
	Social    *SocialData `json:"social,omitempty"`
	Video     *VideoData  `json:"video,omitempty"`
	News      *NewsData   `json:"news,omitempty"`
}

// RecordCount returns the total number of records across all partitions
// (convenience lists excluded, since they duplicate partitioned posts).
func (s *Snapshot) RecordCount() int {
	if s == nil {
		return 0
	}
	count := 0
	if s.Social != nil {
		for _, posts := range s.Social.ByCommunity {
			count += len(posts)
		}
	}
	if s.Video != nil {
		count += len(s.Video.Items)
	}
	if s.News != nil {
		for _, articles := range s.News.BySection {
			count += len(articles)
		}
	}
	return count
}

// Alert represents an urgent notification, e.g. a sleeping giant about
// to trend.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "velocity", "viral", "info"
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
