package domain

import "folio/internal/core/contrib"

// Fallback is the static stats document served when GitHub is fully
// unreachable, so the stats section always has something to render
func Fallback() Stats {
	return Stats{
		TotalCommits: 1200,
		TotalRepos:   25,
		LanguageStats: []LanguageStat{
			{Name: "TypeScript", Bytes: 450000, Percentage: 35},
			{Name: "JavaScript", Bytes: 380000, Percentage: 30},
			{Name: "HTML", Bytes: 200000, Percentage: 15},
			{Name: "CSS", Bytes: 150000, Percentage: 12},
			{Name: "Python", Bytes: 100000, Percentage: 8},
		},
		ContributionData: []contrib.Day{},
		StreakData:       contrib.Streaks{Current: 15, Longest: 45},
	}
}
