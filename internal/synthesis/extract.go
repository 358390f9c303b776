package synthesis

import "github.com/pulse-uk/culture-pulse/internal/models"

// allContent flattens every textual field (title plus body/description
// where present) across all partitioned records. Absent fields
// contribute nothing rather than an empty entry, so the length of the
// result is a lower bound on record count, not an exact one. The
// convenience lists (social top, news latest) are excluded: they
// duplicate partitioned records and would skew frequency counts.
func allContent(snap *models.Snapshot) []string {
	var content []string

	if snap.Social != nil {
		for _, posts := range snap.Social.ByCommunity {
			for _, post := range posts {
				if post.Title != "" {
					content = append(content, post.Title)
				}
				if post.Text != "" {
					content = append(content, post.Text)
				}
			}
		}
	}

	if snap.Video != nil {
		for _, video := range snap.Video.Items {
			if video.Title != "" {
				content = append(content, video.Title)
			}
			if video.Description != "" {
				content = append(content, video.Description)
			}
		}
	}

	if snap.News != nil {
		for _, articles := range snap.News.BySection {
			for _, article := range articles {
				if article.Title != "" {
					content = append(content, article.Title)
				}
				if article.Description != "" {
					content = append(content, article.Description)
				}
			}
		}
	}

	return content
}

// socialTitles returns the titles of all partitioned forum posts.
// Per-platform theme extraction works on titles only.
func socialTitles(snap *models.Snapshot) []string {
	var titles []string
	if snap.Social == nil {
		return titles
	}
	for _, posts := range snap.Social.ByCommunity {
		for _, post := range posts {
			if post.Title != "" {
				titles = append(titles, post.Title)
			}
		}
	}
	return titles
}

func videoTitles(snap *models.Snapshot) []string {
	var titles []string
	if snap.Video == nil {
		return titles
	}
	for _, video := range snap.Video.Items {
		if video.Title != "" {
			titles = append(titles, video.Title)
		}
	}
	return titles
}

func newsTitles(snap *models.Snapshot) []string {
	var titles []string
	if snap.News == nil {
		return titles
	}
	for _, articles := range snap.News.BySection {
		for _, article := range articles {
			if article.Title != "" {
				titles = append(titles, article.Title)
			}
		}
	}
	return titles
}
