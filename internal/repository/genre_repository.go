package repository

import (
	"context"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"gorm.io/gorm/clause"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
	FindOrCreate(ctx context.Context, name string) (*models.Genre, error)
	// Associate links a genre to a content item; duplicate pairs are ignored.
	Associate(ctx context.Context, contentID, genreID uint) error
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&genre, models.Genre{
		Name: name,
	}).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Associate(ctx context.Context, contentID, genreID uint) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ContentGenre{ContentID: contentID, GenreID: genreID}).Error
}
