package domain

// languageColors mirrors GitHub's linguist palette for the languages we
// expect to see, everything else gets the violet fallback
var languageColors = map[string]string{
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"HTML":       "#e34c26",
	"CSS":        "#1572B6",
	"React":      "#61dafb",
	"Vue":        "#4FC08D",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Swift":      "#fa7343",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
}

// LanguageColorFallback is used for any language outside the table
const LanguageColorFallback = "#8b5cf6"

// LanguageColor returns the display hex color for a language
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return LanguageColorFallback
}
