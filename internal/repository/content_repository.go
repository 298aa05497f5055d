package repository

import (
	"context"
	"fmt"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"gorm.io/gorm"
)

// ContentRow is the raw shape shared by every catalog read. GenreNames is
// the comma-joined aggregate; the service layer splits it.
type ContentRow struct {
	ContentID   uint
	ItemID      uint
	ContentType string
	Title       string
	Description string
	Image       string
	ReleaseDate *time.Time
	Rating      *float64
	GenreNames  string
	TotalCount  int64
}

type ContentRepository interface {
	// FindByTypeAndID returns one item with its aggregated genres, or
	// ErrContentNotFound. Unknown types yield ErrInvalidContentType.
	FindByTypeAndID(ctx context.Context, contentType models.ContentType, contentID uint) (*ContentRow, error)
	// FindTopRated returns up to limit rated items, best first, newer
	// type-specific id winning ties. Unrated items are excluded.
	FindTopRated(ctx context.Context, contentType models.ContentType, limit int) ([]ContentRow, error)
	// FindPage returns a randomized page of one type plus the grand total
	// row count for that type. Ordering is deliberately not reproducible
	// across requests.
	FindPage(ctx context.Context, contentType models.ContentType, page, pageSize int) ([]ContentRow, int64, error)
	// FindBestRated returns the best rated items across all three types.
	FindBestRated(ctx context.Context, limit int) ([]ContentRow, error)
	// FindRandom returns a random sample of one type.
	FindRandom(ctx context.Context, contentType models.ContentType, limit int) ([]ContentRow, error)
	// CreateItem inserts a new type row plus its linking-table row in one
	// transaction and returns the assigned shared content id.
	CreateItem(ctx context.Context, contentType models.ContentType, title, description, image string, addedBy uint) (uint, error)
}

type contentRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewContentRepository(db *database.Database) ContentRepository {
	return &contentRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *contentRepository) FindByTypeAndID(ctx context.Context, contentType models.ContentType, contentID uint) (*ContentRow, error) {
	tt, ok := contentTables[contentType]
	if !ok {
		return nil, ErrInvalidContentType
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	query := contentSelectSQL(tt, genreAgg(db)) + "\nWHERE c.content_id = ?\n" + contentGroupBySQL(tt)

	var rows []ContentRow
	if err := db.Raw(query, contentID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrContentNotFound
	}
	return &rows[0], nil
}

func (r *contentRepository) FindTopRated(ctx context.Context, contentType models.ContentType, limit int) ([]ContentRow, error) {
	tt, ok := contentTables[contentType]
	if !ok {
		return nil, ErrInvalidContentType
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	query := contentSelectSQL(tt, genreAgg(db)) +
		"\nWHERE t.rating IS NOT NULL\n" +
		contentGroupBySQL(tt) +
		fmt.Sprintf("\nORDER BY t.rating DESC, t.%s DESC\nLIMIT ?", tt.idColumn)

	var rows []ContentRow
	if err := db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository) FindPage(ctx context.Context, contentType models.ContentType, page, pageSize int) ([]ContentRow, int64, error) {
	tt, ok := contentTables[contentType]
	if !ok {
		return nil, 0, ErrInvalidContentType
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	agg := genreAgg(db)
	totalSub := fmt.Sprintf("(SELECT COUNT(*) FROM %[1]s t2 JOIN content c2 ON c2.%[2]s = t2.%[2]s)", tt.table, tt.idColumn)

	query := contentSelectSQL(tt, agg, totalSub+" AS total_count") + "\n" +
		contentGroupBySQL(tt) +
		"\nORDER BY RANDOM()\nLIMIT ? OFFSET ?"

	offset := (page - 1) * pageSize
	var rows []ContentRow
	if err := db.Raw(query, pageSize, offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	return rows, total, nil
}

func (r *contentRepository) FindBestRated(ctx context.Context, limit int) ([]ContentRow, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	agg := genreAgg(db)

	query := ""
	for i, t := range allContentTypes {
		tt := contentTables[t]
		if i > 0 {
			query += "\nUNION ALL\n"
		}
		query += contentSelectSQL(tt, agg) + "\nWHERE t.rating IS NOT NULL\n" + contentGroupBySQL(tt)
	}
	query += "\nORDER BY rating DESC, content_id DESC\nLIMIT ?"

	var rows []ContentRow
	if err := db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository) FindRandom(ctx context.Context, contentType models.ContentType, limit int) ([]ContentRow, error) {
	tt, ok := contentTables[contentType]
	if !ok {
		return nil, ErrInvalidContentType
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	query := contentSelectSQL(tt, genreAgg(db)) + "\n" + contentGroupBySQL(tt) + "\nORDER BY RANDOM()\nLIMIT ?"

	var rows []ContentRow
	if err := db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepository) CreateItem(ctx context.Context, contentType models.ContentType, title, description, image string, addedBy uint) (uint, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var contentID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link := models.Content{}
		switch contentType {
		case models.ContentTypeBook:
			book := models.Book{Title: title, Description: description, Image: image, AddedByUserID: &addedBy}
			if err := tx.Create(&book).Error; err != nil {
				return err
			}
			link.BookID = &book.BookID
		case models.ContentTypeMovie:
			movie := models.Movie{Title: title, Description: description, Image: image, AddedByUserID: &addedBy}
			if err := tx.Create(&movie).Error; err != nil {
				return err
			}
			link.MovieID = &movie.MovieID
		case models.ContentTypeGame:
			game := models.Game{Title: title, Description: description, Image: image, AddedByUserID: &addedBy}
			if err := tx.Create(&game).Error; err != nil {
				return err
			}
			link.GameID = &game.GameID
		default:
			return ErrInvalidContentType
		}

		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		contentID = link.ContentID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return contentID, nil
}
