package utils

import "strings"

const (
	// MaxTitleLength is the display length for list-view titles.
	MaxTitleLength = 58
	// MaxDescriptionLength is the display length for list-view descriptions.
	MaxDescriptionLength = 100
)

// TruncateTitle shortens a title for list views, trimming a trailing space
// before appending the ellipsis. Limits count characters, not bytes, so a
// multibyte title is never cut mid-rune.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}
	return strings.TrimRight(string(runes[:MaxTitleLength]), " ") + "..."
}

// TruncateDescription shortens a description for list views.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= MaxDescriptionLength {
		return description
	}
	return string(runes[:MaxDescriptionLength]) + "..."
}

// SplitGenres turns a comma-joined genre string into a list of trimmed
// names. An empty string yields an empty list.
func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			genres = append(genres, name)
		}
	}
	return genres
}
