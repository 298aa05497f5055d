package models

import "time"

// Favorite marks either a content item or a community room. Exactly one of
// ContentID/RoomID is set.
type Favorite struct {
	FavoriteID uint      `gorm:"primaryKey" json:"favorite_id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	ContentID  *uint     `gorm:"index" json:"content_id,omitempty"`
	RoomID     *uint     `gorm:"index" json:"room_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteItem is one row of a user's favorites listing, resolved to the
// underlying item's title and image.
type FavoriteItem struct {
	FavoriteID  uint   `json:"favorite_id"`
	ContentID   *uint  `json:"content_id,omitempty"`
	RoomID      *uint  `json:"room_id,omitempty"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ContentType string `json:"content_type"`
}

// FavoriteList groups a user's favorites by kind.
type FavoriteList struct {
	Books       []FavoriteItem `json:"books"`
	Movies      []FavoriteItem `json:"movies"`
	Games       []FavoriteItem `json:"games"`
	Communities []FavoriteItem `json:"communities"`
}
