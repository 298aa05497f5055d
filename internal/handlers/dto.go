package handlers

// Request bodies accept both JSON and form encodings so the HTML front end
// can post forms directly.

type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type UpdateProfileRequest struct {
	Email           string `json:"email" form:"email"`
	Image           string `json:"image" form:"image"`
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type SearchFormRequest struct {
	Query       string `json:"query" form:"query"`
	Genres      string `json:"genres" form:"genres"`
	ContentType string `json:"contentType" form:"contentType"`
}

type ReviewRequest struct {
	Rating  float64 `json:"rating" form:"rating"`
	Comment string  `json:"comment" form:"comment"`
}

type CommunityCreateRequest struct {
	ChatName string `json:"chat_name" form:"chat_name"`
	Keywords string `json:"keywords" form:"keywords"`
	Image    string `json:"image" form:"image"`
}

type MessageRequest struct {
	Content string `json:"content" form:"content"`
}

type FavoriteRequest struct {
	ContentID *uint `json:"content_id" form:"content_id"`
	RoomID    *uint `json:"room_id" form:"room_id"`
}

type ContentRequestBody struct {
	ContentType string `json:"content_type" form:"content_type"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Genres      string `json:"genres" form:"genres"`
}

type DecisionRequest struct {
	Decision    string `json:"decision" form:"decision"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Genres      string `json:"genres" form:"genres"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}
