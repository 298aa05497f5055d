package models

import "time"

// Review holds one user's rating of one content item. A user has at most
// one review per item; resubmission updates in place.
type Review struct {
	ReviewID   uint      `gorm:"primaryKey" json:"review_id"`
	ContentID  uint      `gorm:"not null;uniqueIndex:idx_reviews_content_user" json:"content_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_reviews_content_user" json:"user_id"`
	Rating     float64   `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ReviewDate time.Time `gorm:"index" json:"review_date"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewWithUser is a read model joining the reviewer's username onto the
// review, used on detail pages.
type ReviewWithUser struct {
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
	Username   string    `json:"username"`
}
