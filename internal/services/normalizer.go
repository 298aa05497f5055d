package services

import (
	"strings"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/utils"
)

// PlaceholderImage substitutes for items without an image.
const PlaceholderImage = "/images/placeholder.jpg"

func imageOrPlaceholder(image string) string {
	if image == "" {
		return PlaceholderImage
	}
	return image
}

func typeKey(contentType string) string {
	return strings.ToLower(contentType) + "s"
}

// normalizeSearchRow maps a raw search row into the uniform result shape:
// placeholder image, truncated display fields, genre list, type keys.
func normalizeSearchRow(row repository.SearchRow) models.SearchResult {
	return models.SearchResult{
		ItemID:           row.ItemID,
		ContentID:        row.ContentID,
		ContentType:      row.ContentType,
		Type:             typeKey(row.ContentType),
		Title:            row.Title,
		Name:             utils.TruncateTitle(row.Title),
		Image:            imageOrPlaceholder(row.Image),
		Description:      row.Description,
		ShortDescription: utils.TruncateDescription(row.Description),
		Genres:           utils.SplitGenres(row.GenreNames),
	}
}

// normalizeContentRow maps a catalog row (category/top-rated/random) into
// the same uniform shape, keeping the rating.
func normalizeContentRow(row repository.ContentRow) models.SearchResult {
	return models.SearchResult{
		ItemID:           row.ItemID,
		ContentID:        row.ContentID,
		ContentType:      row.ContentType,
		Type:             typeKey(row.ContentType),
		Title:            row.Title,
		Name:             utils.TruncateTitle(row.Title),
		Image:            imageOrPlaceholder(row.Image),
		Description:      row.Description,
		ShortDescription: utils.TruncateDescription(row.Description),
		Genres:           utils.SplitGenres(row.GenreNames),
		Rating:           row.Rating,
	}
}

// normalizeContentItem keeps the full untruncated text for detail views.
func normalizeContentItem(row *repository.ContentRow) models.ContentItem {
	return models.ContentItem{
		ContentID:   row.ContentID,
		ItemID:      row.ItemID,
		ContentType: row.ContentType,
		Type:        typeKey(row.ContentType),
		Title:       row.Title,
		Description: row.Description,
		Image:       imageOrPlaceholder(row.Image),
		ReleaseDate: row.ReleaseDate,
		Rating:      row.Rating,
		Genres:      utils.SplitGenres(row.GenreNames),
	}
}
