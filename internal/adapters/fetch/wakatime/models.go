package wakatime

// statsEnvelope is the {"data": {...}} wrapper WakaTime puts around stats
type statsEnvelope struct {
	Data Stats `json:"data"`
}

// Stats is a partial WakaTime stats document with fields we use
type Stats struct {
	TotalSeconds              float64    `json:"total_seconds"`
	HumanReadableTotal        string     `json:"human_readable_total"`
	DailyAverage              float64    `json:"daily_average"`
	HumanReadableDailyAverage string     `json:"human_readable_daily_average"`
	DaysIncludingHolidays     int        `json:"days_including_holidays"`
	Range                     string     `json:"range"`
	Languages                 []StatItem `json:"languages"`
	Editors                   []StatItem `json:"editors"`
	OperatingSystems          []StatItem `json:"operating_systems"`
	BestDay                   *BestDay   `json:"best_day"`
}

// StatItem is one row of a stats breakdown (language, editor, OS)
type StatItem struct {
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
