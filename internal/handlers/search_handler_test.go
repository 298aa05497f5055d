package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mediamate-backend/internal/config"
	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
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

func seedBook(t *testing.T, db *database.Database, title, description string, genres ...string) uint {
	t.Helper()

	book := models.Book{Title: title, Description: description}
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

func newSearchApp(t *testing.T, db *database.Database) *fiber.App {
	t.Helper()

	log := testLogger()
	handler := NewSearchHandler(services.NewSearchService(repository.NewSearchRepository(db), log), log)

	app := fiber.New()
	app.Get("/api/v1/search", handler.Search)
	app.Post("/api/v1/search", handler.SubmitSearch)
	return app
}

type searchEnvelope struct {
	Status  string                `json:"status"`
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Data    []models.SearchResult `json:"data"`
	Meta    utils.PaginationMeta  `json:"meta"`
}

func TestSearchEndpointRanksAndNormalizes(t *testing.T) {
	db := newTestDB(t)
	app := newSearchApp(t, db)

	seedBook(t, db, "Dragon Rider", "a boy and his dragon", "Fantasy")
	seedBook(t, db, "Village Tales", "the dragon sleeps under the hill", "Fantasy")
	seedBook(t, db, "Cookbook", "one hundred soups", "Cooking")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?query=dragon&genres=Fantasy", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 2)

	// Title match outranks the description-only match.
	assert.Equal(t, "Dragon Rider", body.Data[0].Title)
	assert.Equal(t, "Village Tales", body.Data[1].Title)
	assert.Equal(t, "books", body.Data[0].Type)
	assert.Equal(t, services.PlaceholderImage, body.Data[0].Image)
	assert.EqualValues(t, 2, body.Meta.Total)
	assert.Equal(t, 1, body.Meta.TotalPages)
}

func TestSearchEndpointHandlesNoMatches(t *testing.T) {
	db := newTestDB(t)
	app := newSearchApp(t, db)

	seedBook(t, db, "Cookbook", "one hundred soups")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?query=spaceship", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Data)
	assert.EqualValues(t, 0, body.Meta.Total)
}

func TestSubmitSearchRedirectsToCanonicalURL(t *testing.T) {
	db := newTestDB(t)
	app := newSearchApp(t, db)

	form := strings.NewReader("query=dragon&genres=Fantasy,Epic&contentType=books")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "/api/v1/search?")
	assert.Contains(t, location, "query=dragon")
	assert.Contains(t, location, "contentType=books")
}
