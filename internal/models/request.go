package models

import "time"

const (
	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"
	RequestStatusRejected = "Rejected"
)

// Request is a user-submitted proposal for a new catalog entry, awaiting an
// admin decision.
type Request struct {
	RequestID   uint      `gorm:"primaryKey" json:"request_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Status      string    `gorm:"index;not null;default:Pending" json:"status"`
	ContentType string    `gorm:"not null" json:"content_type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Request) TableName() string {
	return "requests"
}

// RequestWithUser joins the requester's username, for admin listings.
type RequestWithUser struct {
	RequestID   uint   `json:"request_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ContentType string `json:"content_type"`
	Image       string `json:"image"`
	Username    string `json:"username"`
}
