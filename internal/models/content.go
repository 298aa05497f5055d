package models

import "time"

// ContentType discriminates the three catalog tables. Only values produced
// by ParseContentType are ever used to select a query variant, so table and
// column names never depend on raw request input.
type ContentType string

const (
	ContentTypeBook  ContentType = "Book"
	ContentTypeMovie ContentType = "Movie"
	ContentTypeGame  ContentType = "Game"
)

// ParseContentType accepts the singular and pluralized forms used in routes
// ("book"/"books", case-insensitive) and reports whether the input named a
// known content type.
func ParseContentType(s string) (ContentType, bool) {
	switch normalizeTypeKey(s) {
	case "book", "books":
		return ContentTypeBook, true
	case "movie", "movies":
		return ContentTypeMovie, true
	case "game", "games":
		return ContentTypeGame, true
	}
	return "", false
}

func normalizeTypeKey(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Key returns the pluralized route key ("books"/"movies"/"games").
func (t ContentType) Key() string {
	switch t {
	case ContentTypeBook:
		return "books"
	case ContentTypeMovie:
		return "movies"
	case ContentTypeGame:
		return "games"
	}
	return ""
}

// Content is the linking table mapping one shared content identity to
// exactly one type-specific row.
type Content struct {
	ContentID uint  `gorm:"primaryKey" json:"content_id"`
	BookID    *uint `gorm:"uniqueIndex" json:"book_id,omitempty"`
	MovieID   *uint `gorm:"uniqueIndex" json:"movie_id,omitempty"`
	GameID    *uint `gorm:"uniqueIndex" json:"game_id,omitempty"`
}

func (Content) TableName() string {
	return "content"
}

type Book struct {
	BookID        uint       `gorm:"primaryKey" json:"book_id"`
	Title         string     `gorm:"not null;index" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Image         string     `json:"image"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Rating        *float64   `gorm:"index" json:"rating,omitempty"`
	AddedByUserID *uint      `json:"added_by_user_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

type Movie struct {
	MovieID       uint       `gorm:"primaryKey" json:"movie_id"`
	Title         string     `gorm:"not null;index" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Image         string     `json:"image"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Rating        *float64   `gorm:"index" json:"rating,omitempty"`
	AddedByUserID *uint      `json:"added_by_user_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

type Game struct {
	GameID        uint       `gorm:"primaryKey" json:"game_id"`
	Title         string     `gorm:"not null;index" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Image         string     `json:"image"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Rating        *float64   `gorm:"index" json:"rating,omitempty"`
	AddedByUserID *uint      `json:"added_by_user_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}
