package synthesis

import (
	"fmt"
	"time"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const referenceLimit = 20

// Citation is a formatted reference for a single record.
type Citation struct {
	Type        string `json:"type"`
	Platform    string `json:"platform,omitempty"`
	Publication string `json:"publication,omitempty"`
	Author      string `json:"author,omitempty"`
	Channel     string `json:"channel,omitempty"`
	Title       string `json:"title"`
	Community   string `json:"community,omitempty"`
	Section     string `json:"section,omitempty"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Engagement  string `json:"engagement,omitempty"`
	Inline      string `json:"inline"`
}

// SourceSummary counts cited records per source type.
type SourceSummary struct {
	TotalSources int            `json:"total_sources"`
	ByType       map[string]int `json:"by_type"`
}

// SourceCitations is the full citation output for a snapshot.
type SourceCitations struct {
	InlineCitations []Citation    `json:"inline_citations"`
	References      []string      `json:"references"`
	SourceSummary   SourceSummary `json:"source_summary"`
}

// ExtractSources walks every record in the snapshot, including the
// convenience lists, and formats citations for each. As a documented
// side effect, forum posts missing a source label get Source and
// SourceType attached in place; this is the only mutation the engine
// ever performs on input records.
func (s *Synthesizer) ExtractSources(snap *models.Snapshot) (*SourceCitations, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	sources := &SourceCitations{
		InlineCitations: []Citation{},
		References:      []string{},
		SourceSummary: SourceSummary{
			ByType: map[string]int{
				models.SourceTypeSocial: 0,
				models.SourceTypeNews:   0,
				models.SourceTypeVideo:  0,
			},
		},
	}

	if snap.Social != nil {
		for community, posts := range snap.Social.ByCommunity {
			for i := range posts {
				if posts[i].Source == "" {
					posts[i].Source = fmt.Sprintf("Reddit r/%s", community)
					posts[i].SourceType = models.SourceTypeSocial
				}
				addCitation(sources, socialCitation(posts[i]), models.SourceTypeSocial)
			}
		}
		for _, post := range snap.Social.Top {
			addCitation(sources, socialCitation(post), models.SourceTypeSocial)
		}
	}

	if snap.Video != nil {
		for _, video := range snap.Video.Items {
			addCitation(sources, videoCitation(video), models.SourceTypeVideo)
		}
	}

	if snap.News != nil {
		for _, article := range snap.News.Latest {
			addCitation(sources, newsCitation(article), models.SourceTypeNews)
		}
		for _, articles := range snap.News.BySection {
			for _, article := range articles {
				addCitation(sources, newsCitation(article), models.SourceTypeNews)
			}
		}
	}

	sources.References = referenceList(sources.InlineCitations)
	return sources, nil
}

func addCitation(sources *SourceCitations, citation Citation, sourceType string) {
	sources.InlineCitations = append(sources.InlineCitations, citation)
	sources.SourceSummary.TotalSources++
	sources.SourceSummary.ByType[sourceType]++
}

func citationDate(t time.Time) string {
	if t.IsZero() {
		return time.Now().Format("2006-01-02")
	}
	return t.Format("2006-01-02")
}

func citationTitle(title string) string {
	if len([]rune(title)) > 50 {
		return truncate(title, 50) + "..."
	}
	return title
}

func socialCitation(post models.SocialPost) Citation {
	community := post.Community
	if community == "" {
		community = "Unknown"
	}
	author := post.Author
	if author == "" {
		author = "Anonymous"
	}
	date := citationDate(post.Created)
	return Citation{
		Type:       models.SourceTypeSocial,
		Platform:   "Reddit",
		Author:     author,
		Title:      citationTitle(post.Title),
		Community:  community,
		Date:       date,
		URL:        post.URL,
		Engagement: fmt.Sprintf("%d upvotes, %d comments", post.Score, post.Comments),
		Inline:     fmt.Sprintf("(r/%s, %s)", community, date),
	}
}

func newsCitation(article models.NewsArticle) Citation {
	section := article.Section
	if section == "" {
		section = "News"
	}
	date := citationDate(article.Published)
	return Citation{
		Type:        models.SourceTypeNews,
		Publication: "The Guardian",
		Title:       citationTitle(article.Title),
		Section:     section,
		Date:        date,
		URL:         article.URL,
		Inline:      fmt.Sprintf("(Guardian %s, %s)", section, date),
	}
}

func videoCitation(video models.VideoItem) Citation {
	channel := video.Channel
	if channel == "" {
		channel = "Unknown Channel"
	}
	date := citationDate(video.Published)
	return Citation{
		Type:       models.SourceTypeVideo,
		Platform:   "YouTube",
		Channel:    channel,
		Title:      citationTitle(video.Title),
		Date:       date,
		URL:        video.URL,
		Engagement: fmt.Sprintf("%d likes", video.Likes),
		Inline:     fmt.Sprintf("(YouTube: %s, %d views)", channel, video.Views),
	}
}

// referenceList deduplicates citations by URL and formats up to
// referenceLimit references.
func referenceList(citations []Citation) []string {
	seen := make(map[string]struct{})
	references := []string{}

	for _, citation := range citations {
		if citation.URL != "" {
			if _, dup := seen[citation.URL]; dup {
				continue
			}
			seen[citation.URL] = struct{}{}
		}
		if len(references) == referenceLimit {
			break
		}

		var ref string
		switch citation.Type {
		case models.SourceTypeSocial:
			ref = fmt.Sprintf("%s (%s). '%s'. r/%s, Reddit. Available at: %s",
				citation.Author, citation.Date, citation.Title, citation.Community, citation.URL)
		case models.SourceTypeNews:
			ref = fmt.Sprintf("The Guardian (%s). '%s'. %s Section. Available at: %s",
				citation.Date, citation.Title, citation.Section, citation.URL)
		case models.SourceTypeVideo:
			ref = fmt.Sprintf("%s (%s). '%s'. YouTube. Available at: %s",
				citation.Channel, citation.Date, citation.Title, citation.URL)
		default:
			ref = fmt.Sprintf("%s (%s). '%s'. Available at: %s",
				citation.Platform, citation.Date, citation.Title, citation.URL)
		}
		references = append(references, ref)
	}

	return references
}

// SummaryText renders a human-readable summary of cited sources.
func (c *SourceCitations) SummaryText() string {
	return fmt.Sprintf(`Data Sources Summary:
- Total sources analyzed: %d
- Social media posts: %d (Reddit)
- News articles: %d (The Guardian)
- Video content: %d (YouTube)
- Data freshness: snapshot collected %s`,
		c.SourceSummary.TotalSources,
		c.SourceSummary.ByType[models.SourceTypeSocial],
		c.SourceSummary.ByType[models.SourceTypeNews],
		c.SourceSummary.ByType[models.SourceTypeVideo],
		time.Now().Format("2006-01-02 15:04 MST"))
}

// MethodologyNote describes how the analysis is produced.
func MethodologyNote() string {
	return `Methodology Note:
This analysis synthesizes data from multiple UK sources:
- Reddit API: trending posts from UK-focused subreddits
- YouTube Data API v3: currently trending videos in the UK region
- Guardian Open Platform API: latest UK news across multiple sections
- Analysis applies cross-platform pattern recognition, entity mapping and temporal trend analysis
- Confidence scores based on data convergence across sources`
}
