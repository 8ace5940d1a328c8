// Package domain holds DTOs for ghstats http and service contracts
package domain

import "folio/internal/core/contrib"

// LanguageStat is one language's share of bytes across recent repos
type LanguageStat struct {
	Name       string `json:"name"`
	Bytes      int64  `json:"bytes"`
	Percentage int    `json:"percentage"`
}

// Stats is the aggregate GitHub activity document
type Stats struct {
	TotalCommits     int            `json:"totalCommits"`
	TotalRepos       int            `json:"totalRepos"`
	LanguageStats    []LanguageStat `json:"languageStats"`
	ContributionData []contrib.Day  `json:"contributionData"`
	StreakData       contrib.Streaks `json:"streakData"`
}
