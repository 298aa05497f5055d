package repository

import (
	"context"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"
)

const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

type FavoriteRepository interface {
	// Toggle adds the favorite if absent and removes it otherwise,
	// reporting which action was taken. Exactly one of contentID/roomID
	// must be set.
	Toggle(ctx context.Context, userID uint, contentID, roomID *uint) (string, error)
	ListByUser(ctx context.Context, userID uint) ([]models.FavoriteItem, error)
	IsFavoriteContent(ctx context.Context, userID, contentID uint) (bool, error)
	IsFavoriteRoom(ctx context.Context, userID, roomID uint) (bool, error)
}

type favoriteRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *favoriteRepository) Toggle(ctx context.Context, userID uint, contentID, roomID *uint) (string, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if contentID != nil {
		query = query.Where("content_id = ?", *contentID)
	} else {
		query = query.Where("room_id = ?", *roomID)
	}

	var existing []models.Favorite
	if err := query.Find(&existing).Error; err != nil {
		return "", err
	}

	if len(existing) > 0 {
		if err := r.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return "", err
		}
		return FavoriteRemoved, nil
	}

	favorite := models.Favorite{UserID: userID, ContentID: contentID, RoomID: roomID}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		return "", err
	}
	return FavoriteAdded, nil
}

// ListByUser resolves each favorite to its title and image across the three
// content tables and communities in a single query.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.FavoriteItem, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `SELECT f.favorite_id,
       f.content_id,
       f.room_id,
       COALESCE(b.title, m.title, gm.title, cm.chat_name, '') AS title,
       COALESCE(b.image, m.image, gm.image, cm.image, '') AS image,
       CASE
         WHEN f.room_id IS NOT NULL THEN 'Community'
         WHEN c.book_id IS NOT NULL THEN 'Book'
         WHEN c.movie_id IS NOT NULL THEN 'Movie'
         WHEN c.game_id IS NOT NULL THEN 'Game'
         ELSE ''
       END AS content_type
FROM favorites f
LEFT JOIN content c ON c.content_id = f.content_id
LEFT JOIN books b ON b.book_id = c.book_id
LEFT JOIN movies m ON m.movie_id = c.movie_id
LEFT JOIN games gm ON gm.game_id = c.game_id
LEFT JOIN communities cm ON cm.room_id = f.room_id
WHERE f.user_id = ?`

	var items []models.FavoriteItem
	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *favoriteRepository) IsFavoriteContent(ctx context.Context, userID, contentID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) IsFavoriteRoom(ctx context.Context, userID, roomID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND room_id = ?", userID, roomID).
		Count(&count).Error
	return count > 0, err
}
