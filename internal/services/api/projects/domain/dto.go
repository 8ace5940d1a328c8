// Package domain holds DTOs for projects http and service contracts
package domain

// ProjectsInput is the query input for listing latest projects
type ProjectsInput struct {
	// Count is clamped by the handler, out of range values are not an error
	Count int `query:"count" example:"3"`
}

// Project is a repository in display form
type Project struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	HTMLURL       string   `json:"html_url"`
	Homepage      string   `json:"homepage,omitempty"`
	Language      string   `json:"language"`
	LanguageColor string   `json:"language_color"`
	Stars         int      `json:"stargazers_count"`
	Topics        []string `json:"topics"`
	PushedAt      string   `json:"pushed_at"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
