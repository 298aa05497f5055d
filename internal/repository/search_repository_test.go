package repository

import (
	"context"
	"testing"

	"mediamate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTypes() []models.ContentType {
	return []models.ContentType{models.ContentTypeBook, models.ContentTypeMovie, models.ContentTypeGame}
}

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	seedBook(t, db, "Beowulf", "an epic poem", nil)
	seedBook(t, db, "Dune", "spice and sand", nil)
	seedMovie(t, db, "Alien", "in space no one can hear you scream", nil)
	seedGame(t, db, "Chess", "the classic", nil)

	rows, err := repo.Search(context.Background(), SearchQuery{
		Types: allTypes(),
		Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Everything matches an empty query at rank 1, so title order decides.
	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		assert.Equal(t, 1, row.MatchRank)
		assert.EqualValues(t, 4, row.TotalCount)
		titles = append(titles, row.Title)
	}
	assert.Equal(t, []string{"Alien", "Beowulf", "Chess", "Dune"}, titles)
}

func TestSearchRanksTitleMatchesAboveDescriptionMatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	seedBook(t, db, "A Study in Dragons", "field notes", nil)
	seedMovie(t, db, "Quiet Village", "a dragon terrorises the valley", nil)
	seedGame(t, db, "Farm Life", "plant crops", nil)

	rows, err := repo.Search(context.Background(), SearchQuery{
		Text:  "dragon",
		Types: allTypes(),
		Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A Study in Dragons", rows[0].Title)
	assert.Equal(t, 1, rows[0].MatchRank)
	assert.Equal(t, "Quiet Village", rows[1].Title)
	assert.Equal(t, 2, rows[1].MatchRank)
	assert.EqualValues(t, 2, rows[0].TotalCount)
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	seedBook(t, db, "DRAGON RIDER", "caps lock fantasy", nil)

	rows, err := repo.Search(context.Background(), SearchQuery{
		Text:  "Dragon",
		Types: allTypes(),
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].MatchRank)
}

func TestSearchGenreFilterIsInclusiveOr(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	seedBook(t, db, "Dune", "spice", nil, "Sci-Fi")
	seedMovie(t, db, "Heat", "crime drama", nil, "Crime")
	seedGame(t, db, "Myst", "puzzle island", nil, "Puzzle")

	rows, err := repo.Search(context.Background(), SearchQuery{
		Genres: []string{"Sci-Fi", "Crime"},
		Types:  allTypes(),
		Limit:  50,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	titles := []string{rows[0].Title, rows[1].Title}
	assert.ElementsMatch(t, []string{"Dune", "Heat"}, titles)
}

func TestSearchRestrictsToRequestedTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	seedBook(t, db, "Solaris", "a book", nil)
	seedMovie(t, db, "Solaris", "a movie", nil)

	rows, err := repo.Search(context.Background(), SearchQuery{
		Text:  "solaris",
		Types: []models.ContentType{models.ContentTypeMovie},
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Movie", rows[0].ContentType)
}

func TestSearchDeduplicatesAcrossGenreJoins(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	// Multiple genres must not multiply the item in the result set.
	seedBook(t, db, "Hyperion", "pilgrims tell tales", nil, "Sci-Fi", "Horror", "Classic")

	rows, err := repo.Search(context.Background(), SearchQuery{
		Text:  "hyperion",
		Types: allTypes(),
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].TotalCount)
	assert.ElementsMatch(t, []string{"Sci-Fi", "Horror", "Classic"}, splitNonEmpty(rows[0].GenreNames))
}

func TestSearchPaginationCoversEveryItemOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	titles := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}
	for _, title := range titles {
		seedBook(t, db, title, "phonetic", nil)
	}

	seen := map[uint]bool{}
	for offset := 0; offset < len(titles); offset += 3 {
		rows, err := repo.Search(context.Background(), SearchQuery{
			Types:  allTypes(),
			Limit:  3,
			Offset: offset,
		})
		require.NoError(t, err)
		for _, row := range rows {
			assert.False(t, seen[row.ContentID], "content %d returned twice", row.ContentID)
			seen[row.ContentID] = true
			assert.EqualValues(t, len(titles), row.TotalCount)
		}
	}
	assert.Len(t, seen, len(titles))
}

func TestSearchRejectsEmptyTypeSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	_, err := repo.Search(context.Background(), SearchQuery{
		Types: []models.ContentType{models.ContentType("Podcast")},
		Limit: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
