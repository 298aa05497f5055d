package models

import "time"

// SearchParams carries one search invocation's inputs. Query and Genres are
// raw caller input; sanitization happens in the search service.
type SearchParams struct {
	Query       string
	Genres      []string
	ContentType string // empty means all three types
	Page        int
	PageSize    int
}

// SearchResult is the uniform, ephemeral result shape shared by search and
// category listings. Name and ShortDescription are display-truncated; Title
// and Description keep the full text for detail views.
type SearchResult struct {
	ItemID           uint     `json:"item_id"`
	ContentID        uint     `json:"id"`
	ContentType      string   `json:"content_type"`
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Genres           []string `json:"genres"`
	Rating           *float64 `json:"rating,omitempty"`
}

// SearchPage is one page of results plus the navigation metadata derived
// from the query's total count.
type SearchPage struct {
	Results     []SearchResult `json:"results"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	TotalCount  int64          `json:"total_count"`
	StartPage   int            `json:"start_page"`
	EndPage     int            `json:"end_page"`
}

// ContentItem is the full detail view of one catalog entry.
type ContentItem struct {
	ContentID   uint       `json:"id"`
	ItemID      uint       `json:"item_id"`
	ContentType string     `json:"content_type"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Genres      []string   `json:"genres"`
}

// ContentDetail bundles an item with its reviews and the caller's own state.
type ContentDetail struct {
	Item          ContentItem      `json:"item"`
	Reviews       []ReviewWithUser `json:"reviews"`
	AverageRating *float64         `json:"average_rating,omitempty"`
	UserReview    *Review          `json:"user_review,omitempty"`
	IsFavorite    bool             `json:"is_favorite"`
}

// HomeContent is the landing page payload: best rated across all types plus
// a random sample of each type.
type HomeContent struct {
	BestRated []SearchResult `json:"best_rated"`
	Books     []SearchResult `json:"books"`
	Movies    []SearchResult `json:"movies"`
	Games     []SearchResult `json:"games"`
}
