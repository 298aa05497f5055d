package repository

import (
	"context"
	"errors"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	// SubmitOrUpdate upserts the (contentID, userID) review and recomputes
	// the owning item's mean rating in the same transaction, so a reviewer
	// never observes a stale rating after their review was accepted.
	SubmitOrUpdate(ctx context.Context, contentID, userID uint, rating float64, comment string) error
	// ListByContent returns an item's reviews with usernames, newest first.
	ListByContent(ctx context.Context, contentID uint) ([]models.ReviewWithUser, error)
	// FindByContentAndUser returns the user's own review or nil.
	FindByContentAndUser(ctx context.Context, contentID, userID uint) (*models.Review, error)
	// AverageForContent returns the live mean rating, or nil with no reviews.
	AverageForContent(ctx context.Context, contentID uint) (*float64, error)
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) SubmitOrUpdate(ctx context.Context, contentID, userID uint, rating float64, comment string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content models.Content
		if err := tx.First(&content, "content_id = ?", contentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		review := models.Review{
			ContentID:  contentID,
			UserID:     userID,
			Rating:     rating,
			Comment:    comment,
			ReviewDate: time.Now().UTC(),
		}
		// Concurrent duplicate submissions resolve atomically on the
		// (content_id, user_id) unique index.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "review_date"}),
		}).Create(&review).Error; err != nil {
			return err
		}

		var avg float64
		if err := tx.Model(&models.Review{}).
			Where("content_id = ?", contentID).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return err
		}

		switch {
		case content.BookID != nil:
			return tx.Model(&models.Book{}).Where("book_id = ?", *content.BookID).Update("rating", avg).Error
		case content.MovieID != nil:
			return tx.Model(&models.Movie{}).Where("movie_id = ?", *content.MovieID).Update("rating", avg).Error
		case content.GameID != nil:
			return tx.Model(&models.Game{}).Where("game_id = ?", *content.GameID).Update("rating", avg).Error
		default:
			return ErrContentNotFound
		}
	})
}

func (r *reviewRepository) ListByContent(ctx context.Context, contentID uint) ([]models.ReviewWithUser, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var reviews []models.ReviewWithUser
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.rating, reviews.comment, reviews.review_date, users.username").
		Joins("JOIN users ON users.user_id = reviews.user_id").
		Where("reviews.content_id = ?", contentID).
		Order("reviews.review_date DESC").
		Scan(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByContentAndUser(ctx context.Context, contentID, userID uint) (*models.Review, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentID, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) AverageForContent(ctx context.Context, contentID uint) (*float64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var avg *float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("content_id = ?", contentID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
