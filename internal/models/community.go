package models

import "time"

type Community struct {
	RoomID    uint      `gorm:"primaryKey" json:"room_id"`
	ChatName  string    `gorm:"not null;size:30" json:"chat_name"`
	Keywords  string    `gorm:"size:150" json:"keywords"`
	Image     string    `gorm:"size:255" json:"image"`
	CreatorID uint      `gorm:"index" json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Community) TableName() string {
	return "communities"
}

type Message struct {
	MessageID uint      `gorm:"primaryKey" json:"message_id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	FromUser  uint      `gorm:"not null" json:"from_user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Time      time.Time `json:"time"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageWithUser joins the sender's username onto a chat message.
type MessageWithUser struct {
	MessageID uint      `json:"message_id"`
	RoomID    uint      `json:"room_id"`
	FromUser  uint      `json:"from_user"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Time      time.Time `json:"time"`
}

// CommunityMember is a user who has favorited a room.
type CommunityMember struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

// CommunityView adds the caller's favorite state to a community listing.
type CommunityView struct {
	Community
	IsFavorite bool `json:"is_favorite"`
}

// RoomView is the chat room payload: the community plus its members and
// message history.
type RoomView struct {
	Room     Community         `json:"room"`
	Members  []CommunityMember `json:"members"`
	Messages []MessageWithUser `json:"messages"`
}
