package devto

// Article is a partial dev.to article document with fields we use
type Article struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	URL                string   `json:"url"`
	CoverImage         string   `json:"cover_image"`
	PublishedAt        string   `json:"published_at"`
	TagList            []string `json:"tag_list"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
	Reactions          int      `json:"public_reactions_count"`
	Comments           int      `json:"comments_count"`
	BodyMarkdown       string   `json:"body_markdown,omitempty"`
}

// articleDetail covers the single-article endpoint where tags come back
// under "tags" as an array while "tag_list" degrades to a comma string
type articleDetail struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	URL                string   `json:"url"`
	CoverImage         string   `json:"cover_image"`
	PublishedAt        string   `json:"published_at"`
	Tags               []string `json:"tags"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
	Reactions          int      `json:"public_reactions_count"`
	Comments           int      `json:"comments_count"`
	BodyMarkdown       string   `json:"body_markdown"`
}

func (d articleDetail) toArticle() Article {
	return Article{
		ID:                 d.ID,
		Title:              d.Title,
		Description:        d.Description,
		URL:                d.URL,
		CoverImage:         d.CoverImage,
		PublishedAt:        d.PublishedAt,
		TagList:            d.Tags,
		ReadingTimeMinutes: d.ReadingTimeMinutes,
		Reactions:          d.Reactions,
		Comments:           d.Comments,
		BodyMarkdown:       d.BodyMarkdown,
	}
}
