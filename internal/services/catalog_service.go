package services

import (
	"context"
	"errors"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

const (
	// CategoryPageSize is the browse listing's page length.
	CategoryPageSize = 20
	// TopRatedLimit bounds the top-rated strip on category pages.
	TopRatedLimit = 10
	// HomeSampleLimit bounds each random per-type sample on the landing page.
	HomeSampleLimit = 12
)

var ErrUnknownCategory = errors.New("unknown category")

type CatalogService interface {
	// Home builds the landing page payload: best rated across all types
	// plus a random sample per type.
	Home(ctx context.Context) (*models.HomeContent, error)
	// CategoryPage returns one randomized page of a single type plus its
	// top-rated strip. The typeKey accepts singular or plural spellings.
	CategoryPage(ctx context.Context, typeKey string, page int) (*models.SearchPage, []models.SearchResult, error)
	// Detail loads one item with reviews and, when userID is set, the
	// caller's own review and favorite state.
	Detail(ctx context.Context, typeKey string, contentID uint, userID *uint) (*models.ContentDetail, error)
	// Genres lists every known genre, for search filter controls.
	Genres(ctx context.Context) ([]models.Genre, error)
}

type catalogService struct {
	content   repository.ContentRepository
	reviews   repository.ReviewRepository
	favorites repository.FavoriteRepository
	genres    repository.GenreRepository
	logger    *logrus.Logger
}

func NewCatalogService(
	content repository.ContentRepository,
	reviews repository.ReviewRepository,
	favorites repository.FavoriteRepository,
	genres repository.GenreRepository,
	logger *logrus.Logger,
) CatalogService {
	return &catalogService{
		content:   content,
		reviews:   reviews,
		favorites: favorites,
		genres:    genres,
		logger:    logger,
	}
}

func (s *catalogService) Home(ctx context.Context) (*models.HomeContent, error) {
	best, err := s.content.FindBestRated(ctx, TopRatedLimit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load best rated content")
		return nil, err
	}

	home := &models.HomeContent{BestRated: normalizeContentRows(best)}
	samples := []struct {
		contentType models.ContentType
		dest        *[]models.SearchResult
	}{
		{models.ContentTypeBook, &home.Books},
		{models.ContentTypeMovie, &home.Movies},
		{models.ContentTypeGame, &home.Games},
	}
	for _, sample := range samples {
		rows, err := s.content.FindRandom(ctx, sample.contentType, HomeSampleLimit)
		if err != nil {
			s.logger.WithError(err).WithField("content_type", sample.contentType).
				Error("Failed to load random sample")
			return nil, err
		}
		*sample.dest = normalizeContentRows(rows)
	}
	return home, nil
}

func (s *catalogService) CategoryPage(ctx context.Context, typeKey string, page int) (*models.SearchPage, []models.SearchResult, error) {
	contentType, ok := models.ParseContentType(typeKey)
	if !ok {
		return nil, nil, ErrUnknownCategory
	}
	if page < 1 {
		page = 1
	}

	rows, total, err := s.content.FindPage(ctx, contentType, page, CategoryPageSize)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"content_type": contentType,
			"page":         page,
		}).Error("Failed to load category page")
		return nil, nil, err
	}

	topRows, err := s.content.FindTopRated(ctx, contentType, TopRatedLimit)
	if err != nil {
		s.logger.WithError(err).WithField("content_type", contentType).
			Error("Failed to load top rated strip")
		return nil, nil, err
	}

	totalPages := int((total + CategoryPageSize - 1) / CategoryPageSize)
	startPage, endPage := utils.PageWindow(page, totalPages)

	result := &models.SearchPage{
		Results:     normalizeContentRows(rows),
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		StartPage:   startPage,
		EndPage:     endPage,
	}
	return result, normalizeContentRows(topRows), nil
}

func (s *catalogService) Detail(ctx context.Context, typeKey string, contentID uint, userID *uint) (*models.ContentDetail, error) {
	contentType, ok := models.ParseContentType(typeKey)
	if !ok {
		return nil, ErrUnknownCategory
	}

	row, err := s.content.FindByTypeAndID(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageForContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	detail := &models.ContentDetail{
		Item:          normalizeContentItem(row),
		Reviews:       reviews,
		AverageRating: avg,
	}

	if userID != nil {
		own, err := s.reviews.FindByContentAndUser(ctx, contentID, *userID)
		if err != nil {
			return nil, err
		}
		detail.UserReview = own

		fav, err := s.favorites.IsFavoriteContent(ctx, *userID, contentID)
		if err != nil {
			return nil, err
		}
		detail.IsFavorite = fav
	}
	return detail, nil
}

func (s *catalogService) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func normalizeContentRows(rows []repository.ContentRow) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, normalizeContentRow(row))
	}
	return results
}
