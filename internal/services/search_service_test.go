package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"mediamate-backend/internal/config"
	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	return database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func seedBook(t *testing.T, db *database.Database, title, description, image string, genres ...string) uint {
	t.Helper()

	book := models.Book{Title: title, Description: description, Image: image}
	require.NoError(t, db.Create(&book).Error)
	link := models.Content{BookID: &book.BookID}
	require.NoError(t, db.Create(&link).Error)

	for _, name := range genres {
		var genre models.Genre
		require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error)
		require.NoError(t, db.Create(&models.ContentGenre{ContentID: link.ContentID, GenreID: genre.GenreID}).Error)
	}
	return link.ContentID
}

func TestSanitizeQueryText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "dune", want: "dune"},
		{name: "percent stripped", input: "100%", want: "100"},
		{name: "underscore stripped", input: "a_b_c", want: "abc"},
		{name: "surrounding whitespace trimmed", input: "  dune  ", want: "dune"},
		{name: "only wildcards become empty", input: "%_%", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeQueryText(tt.input))
		})
	}
}

func TestSanitizeGenres(t *testing.T) {
	got := SanitizeGenres([]string{`"Fantasy"`, " 'Sci-Fi' ", "", "  ", "Horror"})
	assert.Equal(t, []string{"Fantasy", "Sci-Fi", "Horror"}, got)
}

func TestSearchWildcardInputMatchesLiteralText(t *testing.T) {
	db := newTestDB(t)
	service := NewSearchService(repository.NewSearchRepository(db), testLogger())

	seedBook(t, db, "100 Years of Solitude", "a family saga", "")
	seedBook(t, db, "Unrelated", "nothing in common", "")

	literal, err := service.Search(context.Background(), models.SearchParams{Query: "100"})
	require.NoError(t, err)

	wildcard, err := service.Search(context.Background(), models.SearchParams{Query: "100%"})
	require.NoError(t, err)

	// "%" must not act as a pattern wildcard.
	require.Len(t, literal.Results, 1)
	assert.Equal(t, literal.Results, wildcard.Results)
}

func TestSearchUnknownContentTypeYieldsEmptyPage(t *testing.T) {
	db := newTestDB(t)
	service := NewSearchService(repository.NewSearchRepository(db), testLogger())

	seedBook(t, db, "Dune", "spice", "")

	page, err := service.Search(context.Background(), models.SearchParams{ContentType: "podcast"})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.EqualValues(t, 0, page.TotalCount)
}

func TestSearchNormalizesResults(t *testing.T) {
	db := newTestDB(t)
	service := NewSearchService(repository.NewSearchRepository(db), testLogger())

	longTitle := strings.Repeat("t", 70)
	longDescription := strings.Repeat("d", 130)
	seedBook(t, db, longTitle, longDescription, "", "Fantasy", "Epic")

	page, err := service.Search(context.Background(), models.SearchParams{})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	result := page.Results[0]
	assert.Equal(t, longTitle, result.Title)
	assert.Equal(t, strings.Repeat("t", 58)+"...", result.Name)
	assert.Equal(t, longDescription, result.Description)
	assert.Equal(t, strings.Repeat("d", 100)+"...", result.ShortDescription)
	assert.Equal(t, PlaceholderImage, result.Image)
	assert.Equal(t, "Book", result.ContentType)
	assert.Equal(t, "books", result.Type)
	assert.ElementsMatch(t, []string{"Fantasy", "Epic"}, result.Genres)
}

func TestSearchComputesPageNavigation(t *testing.T) {
	db := newTestDB(t)
	service := NewSearchService(repository.NewSearchRepository(db), testLogger())

	for i := 0; i < 45; i++ {
		seedBook(t, db, "Book "+string(rune('A'+i%26))+strings.Repeat("x", i/26+1), "filler", "")
	}

	page, err := service.Search(context.Background(), models.SearchParams{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.EqualValues(t, 45, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages) // 45 results at 40 per page
	assert.Len(t, page.Results, 40)
}

func TestSearchClampsPageNumber(t *testing.T) {
	db := newTestDB(t)
	service := NewSearchService(repository.NewSearchRepository(db), testLogger())

	seedBook(t, db, "Dune", "spice", "")

	page, err := service.Search(context.Background(), models.SearchParams{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Results, 1)
}
