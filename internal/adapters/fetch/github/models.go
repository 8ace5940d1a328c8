package github

import "time"

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Owner       Owner     `json:"owner"`
	Language    string    `json:"language"`
	Stargazers  int       `json:"stargazers_count"`
	ForksCount  int       `json:"forks_count"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	Topics      []string  `json:"topics"`
	Homepage    string    `json:"homepage"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
	PushedAt    time.Time `json:"pushed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Owner is a partial GitHub user or org document
type Owner struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// WeeklyActivity is one row of the commit_activity stats endpoint
// Week is a unix timestamp for the week's Sunday, Days holds Sunday..Saturday
type WeeklyActivity struct {
	Week  int64 `json:"week"`
	Total int   `json:"total"`
	Days  []int `json:"days"`
}
