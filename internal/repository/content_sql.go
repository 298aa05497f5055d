package repository

import (
	"fmt"

	"mediamate-backend/internal/models"

	"gorm.io/gorm"
)

// typeTable names the physical table behind one content type. The three
// entries below are the closed set of identifiers ever interpolated into
// SQL text; they are compile-time constants selected by a parsed
// discriminator, never raw request input.
type typeTable struct {
	table    string
	idColumn string
	label    string
}

var contentTables = map[models.ContentType]typeTable{
	models.ContentTypeBook:  {table: "books", idColumn: "book_id", label: "Book"},
	models.ContentTypeMovie: {table: "movies", idColumn: "movie_id", label: "Movie"},
	models.ContentTypeGame:  {table: "games", idColumn: "game_id", label: "Game"},
}

// allContentTypes fixes the variant order for whole-catalog queries.
var allContentTypes = []models.ContentType{
	models.ContentTypeBook,
	models.ContentTypeMovie,
	models.ContentTypeGame,
}

// genreAgg returns the dialect's comma-joining aggregate over genre names.
// Production runs on Postgres; tests run the same queries on sqlite.
func genreAgg(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "GROUP_CONCAT(DISTINCT g.name)"
	}
	return "STRING_AGG(DISTINCT g.name, ',')"
}

// contentSelectSQL is the shared per-type SELECT joining the linking table
// and aggregating genre names into one comma-joined column. Extra columns
// are appended to the SELECT list, before the FROM block. Aggregate columns
// carry explicit aliases so a compound ORDER BY can name them on either
// dialect.
func contentSelectSQL(tt typeTable, agg string, extraCols ...string) string {
	extra := ""
	for _, col := range extraCols {
		extra += ",\n       " + col
	}
	return fmt.Sprintf(`SELECT c.content_id AS content_id,
       t.%[2]s AS item_id,
       '%[3]s' AS content_type,
       t.title,
       t.description,
       COALESCE(t.image, '') AS image,
       t.release_date,
       t.rating AS rating,
       COALESCE(%[4]s, '') AS genre_names%[5]s
FROM %[1]s t
JOIN content c ON c.%[2]s = t.%[2]s
LEFT JOIN content_genres cg ON cg.content_id = c.content_id
LEFT JOIN genres g ON g.genre_id = cg.genre_id`,
		tt.table, tt.idColumn, tt.label, agg, extra)
}

func contentGroupBySQL(tt typeTable) string {
	return fmt.Sprintf("GROUP BY c.content_id, t.%[1]s, t.title, t.description, t.image, t.release_date, t.rating", tt.idColumn)
}

// genreFilterSQL keeps items having at least one of the requested genres
// (inclusive OR across the set). The alias c is shared by every variant.
const genreFilterSQL = `
  AND EXISTS (
    SELECT 1
    FROM content_genres cg2
    JOIN genres g2 ON g2.genre_id = cg2.genre_id
    WHERE cg2.content_id = c.content_id
      AND g2.name IN ?
  )`

// searchVariantSQL is one branch of the search union for a single content
// type. Rank 1 is a title match (or an empty query matching everything),
// rank 2 a description-only match; MIN keeps each item at its best rank.
func searchVariantSQL(tt typeTable, agg string, withGenreFilter bool) string {
	genreFilter := ""
	if withGenreFilter {
		genreFilter = genreFilterSQL
	}
	return fmt.Sprintf(`SELECT t.%[2]s AS item_id,
       c.content_id,
       '%[3]s' AS content_type,
       t.title,
       COALESCE(t.image, '') AS image,
       t.description,
       COALESCE(%[4]s, '') AS genre_names,
       MIN(CASE WHEN ? = '' OR LOWER(t.title) LIKE ? THEN 1 ELSE 2 END) AS match_rank
FROM %[1]s t
JOIN content c ON c.%[2]s = t.%[2]s
LEFT JOIN content_genres cg ON cg.content_id = c.content_id
LEFT JOIN genres g ON g.genre_id = cg.genre_id
WHERE (? = '' OR LOWER(t.title) LIKE ? OR LOWER(t.description) LIKE ?)%[5]s
GROUP BY t.%[2]s, c.content_id, t.title, t.image, t.description`,
		tt.table, tt.idColumn, tt.label, agg, genreFilter)
}
