// Package domain holds DTOs for codingtime http and service contracts
package domain

// StatsInput is the query input for fetching coding time stats
type StatsInput struct {
	Range string `query:"range" validate:"omitempty,oneof=last_7_days last_30_days last_6_months last_year" example:"last_7_days"`
}

// Breakdown is one row of a coding time split (language, editor, OS)
type Breakdown struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Text         string  `json:"text"`
}

// BestDay is the most productive day in the range
type BestDay struct {
	Date         string  `json:"date"`
	TotalSeconds float64 `json:"total_seconds"`
	Text         string  `json:"text"`
}

// CodingStats is the coding time document for a range
type CodingStats struct {
	Range            string      `json:"range"`
	TotalSeconds     float64     `json:"total_seconds"`
	TotalTime        string      `json:"total_time"`
	DailyAverage     float64     `json:"daily_average"`
	TodayTime        string      `json:"today_time"`
	Languages        []Breakdown `json:"languages"`
	Editors          []Breakdown `json:"editors"`
	OperatingSystems []Breakdown `json:"operating_systems"`
	BestDay          *BestDay    `json:"best_day,omitempty"`
}
