package repository

import (
	"context"
	"strings"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"
)

// SearchQuery is a sanitized search request. Text and Genres must already
// have had pattern-special and quote characters stripped by the caller.
type SearchQuery struct {
	Text   string
	Genres []string
	Types  []models.ContentType
	Limit  int
	Offset int
}

// SearchRow is one raw result of the unioned search. TotalCount repeats the
// distinct result count of the whole query on every row so callers can
// compute total pages without a second round-trip.
type SearchRow struct {
	ItemID      uint
	ContentID   uint
	ContentType string
	Title       string
	Image       string
	Description string
	GenreNames  string
	MatchRank   int
	TotalCount  int64
}

type SearchRepository interface {
	Search(ctx context.Context, q SearchQuery) ([]SearchRow, error)
}

type searchRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewSearchRepository(db *database.Database) SearchRepository {
	return &searchRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

// Search runs one ranked, paginated query across the selected content
// types. The union is assembled from the statically known per-type variants;
// every value is a bound parameter.
func (r *searchRepository) Search(ctx context.Context, q SearchQuery) ([]SearchRow, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	agg := genreAgg(db)

	text := strings.ToLower(strings.TrimSpace(q.Text))
	pattern := ""
	if text != "" {
		pattern = "%" + text + "%"
	}

	withGenres := len(q.Genres) > 0

	parts := make([]string, 0, len(q.Types))
	args := make([]interface{}, 0, len(q.Types)*6+2)
	for _, t := range q.Types {
		tt, ok := contentTables[t]
		if !ok {
			continue
		}
		parts = append(parts, searchVariantSQL(tt, agg, withGenres))
		args = append(args, text, pattern, text, pattern, pattern)
		if withGenres {
			args = append(args, q.Genres)
		}
	}
	if len(parts) == 0 {
		return nil, ErrInvalidContentType
	}

	query := "WITH search_results AS (\n" + strings.Join(parts, "\nUNION ALL\n") + "\n)\n" +
		`SELECT item_id, content_id, content_type, title, image, description, genre_names, match_rank,
       (SELECT COUNT(*) FROM search_results) AS total_count
FROM search_results
ORDER BY match_rank, title
LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	var rows []SearchRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
