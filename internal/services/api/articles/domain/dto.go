// Package domain holds DTOs for articles http and service contracts
package domain

// ArticlesInput is the query input for listing articles
type ArticlesInput struct {
	Username string `query:"username" validate:"omitempty,min=1,max=100" example:"ben"`
	// PerPage is clamped by the handler, out of range values are not an error
	PerPage int `query:"per_page" example:"6"`
}

// BlogPost is one published article in display form
type BlogPost struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	CoverImage    string   `json:"cover_image,omitempty"`
	PublishedAt   string   `json:"published_at"`
	FormattedDate string   `json:"formatted_date"`
	Tags          []string `json:"tags"`
	ReadingTime   string   `json:"reading_time"`
	Reactions     int      `json:"reactions"`
	Comments      int      `json:"comments"`
}
