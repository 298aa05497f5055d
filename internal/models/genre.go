package models

import "time"

type Genre struct {
	GenreID   uint      `gorm:"primaryKey" json:"genre_id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Genre) TableName() string {
	return "genres"
}

// ContentGenre is the pure join table between content and genres. The
// composite primary key forbids duplicate associations.
type ContentGenre struct {
	ContentID uint `gorm:"primaryKey" json:"content_id"`
	GenreID   uint `gorm:"primaryKey" json:"genre_id"`
}

func (ContentGenre) TableName() string {
	return "content_genres"
}
