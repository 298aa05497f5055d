package repository

import (
	"testing"
	"time"

	"mediamate-backend/internal/config"
	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	return database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func ratingPtr(v float64) *float64 {
	return &v
}

func seedBook(t *testing.T, db *database.Database, title, description string, rating *float64, genres ...string) uint {
	t.Helper()

	book := models.Book{Title: title, Description: description, Rating: rating}
	require.NoError(t, db.Create(&book).Error)
	link := models.Content{BookID: &book.BookID}
	require.NoError(t, db.Create(&link).Error)
	attachTestGenres(t, db, link.ContentID, genres)
	return link.ContentID
}

func seedMovie(t *testing.T, db *database.Database, title, description string, rating *float64, genres ...string) uint {
	t.Helper()

	movie := models.Movie{Title: title, Description: description, Rating: rating}
	require.NoError(t, db.Create(&movie).Error)
	link := models.Content{MovieID: &movie.MovieID}
	require.NoError(t, db.Create(&link).Error)
	attachTestGenres(t, db, link.ContentID, genres)
	return link.ContentID
}

func seedGame(t *testing.T, db *database.Database, title, description string, rating *float64, genres ...string) uint {
	t.Helper()

	game := models.Game{Title: title, Description: description, Rating: rating}
	require.NoError(t, db.Create(&game).Error)
	link := models.Content{GameID: &game.GameID}
	require.NoError(t, db.Create(&link).Error)
	attachTestGenres(t, db, link.ContentID, genres)
	return link.ContentID
}

func attachTestGenres(t *testing.T, db *database.Database, contentID uint, genres []string) {
	t.Helper()

	for _, name := range genres {
		var genre models.Genre
		require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error)
		require.NoError(t, db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.ContentGenre{ContentID: contentID, GenreID: genre.GenreID}).Error)
	}
}

func seedUser(t *testing.T, db *database.Database, username string) uint {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		UserType:     models.UserTypeUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.UserID
}
