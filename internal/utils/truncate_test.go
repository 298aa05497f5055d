package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "short title unchanged",
			title: "Dune",
			want:  "Dune",
		},
		{
			name:  "exactly at the limit unchanged",
			title: strings.Repeat("a", MaxTitleLength),
			want:  strings.Repeat("a", MaxTitleLength),
		},
		{
			name:  "long title gets ellipsis",
			title: strings.Repeat("a", MaxTitleLength+10),
			want:  strings.Repeat("a", MaxTitleLength) + "...",
		},
		{
			name:  "trailing space trimmed before ellipsis",
			title: strings.Repeat("a", MaxTitleLength-1) + " b",
			want:  strings.Repeat("a", MaxTitleLength-1) + "...",
		},
		{
			name:  "multibyte title cut on character boundary",
			title: strings.Repeat("日", MaxTitleLength+5),
			want:  strings.Repeat("日", MaxTitleLength) + "...",
		},
		{
			name:  "multibyte title within limit unchanged",
			title: strings.Repeat("ё", MaxTitleLength),
			want:  strings.Repeat("ё", MaxTitleLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateTitle(tt.title))
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	short := "a short description"
	assert.Equal(t, short, TruncateDescription(short))

	long := strings.Repeat("x", MaxDescriptionLength+1)
	got := TruncateDescription(long)
	assert.Equal(t, strings.Repeat("x", MaxDescriptionLength)+"...", got)

	wide := strings.Repeat("é", MaxDescriptionLength+3)
	assert.Equal(t, strings.Repeat("é", MaxDescriptionLength)+"...", TruncateDescription(wide))
}

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: []string{}},
		{name: "single genre", input: "Fantasy", want: []string{"Fantasy"}},
		{name: "multiple genres", input: "Fantasy,Sci-Fi", want: []string{"Fantasy", "Sci-Fi"}},
		{name: "whitespace trimmed", input: " Fantasy , Sci-Fi ", want: []string{"Fantasy", "Sci-Fi"}},
		{name: "empty entries dropped", input: "Fantasy,,Sci-Fi,", want: []string{"Fantasy", "Sci-Fi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitGenres(tt.input))
		})
	}
}
