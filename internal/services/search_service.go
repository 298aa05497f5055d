package services

import (
	"context"
	"errors"
	"strings"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// ErrSearchFailed is the only error Search surfaces for query execution
// failures; detail stays in the logs.
var ErrSearchFailed = errors.New("search failed")

// DefaultSearchPageSize matches the search listing's page length.
const DefaultSearchPageSize = 40

type SearchService interface {
	// Search runs one ranked, paginated query across the selected content
	// types. Malformed filter input degrades to an empty result set
	// rather than erroring.
	Search(ctx context.Context, params models.SearchParams) (*models.SearchPage, error)
}

type searchService struct {
	repo   repository.SearchRepository
	logger *logrus.Logger
}

func NewSearchService(repo repository.SearchRepository, logger *logrus.Logger) SearchService {
	return &searchService{
		repo:   repo,
		logger: logger,
	}
}

func (s *searchService) Search(ctx context.Context, params models.SearchParams) (*models.SearchPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = DefaultSearchPageSize
	}

	text := SanitizeQueryText(params.Query)
	genres := SanitizeGenres(params.Genres)

	types := allContentTypes()
	if params.ContentType != "" {
		t, ok := models.ParseContentType(params.ContentType)
		if !ok {
			// Unknown type filter yields no results instead of an error.
			return emptySearchPage(page), nil
		}
		types = []models.ContentType{t}
	}

	rows, err := s.repo.Search(ctx, repository.SearchQuery{
		Text:   text,
		Genres: genres,
		Types:  types,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"query":        text,
			"genres":       genres,
			"content_type": params.ContentType,
			"page":         page,
		}).Error("Search query failed")
		return nil, ErrSearchFailed
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, normalizeSearchRow(row))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	startPage, endPage := utils.PageWindow(page, totalPages)

	return &models.SearchPage{
		Results:     results,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		StartPage:   startPage,
		EndPage:     endPage,
	}, nil
}

func allContentTypes() []models.ContentType {
	return []models.ContentType{
		models.ContentTypeBook,
		models.ContentTypeMovie,
		models.ContentTypeGame,
	}
}

func emptySearchPage(page int) *models.SearchPage {
	return &models.SearchPage{
		Results:     []models.SearchResult{},
		CurrentPage: page,
	}
}

// SanitizeQueryText strips the pattern-match wildcards so a query like
// "100%" behaves identically to "100".
func SanitizeQueryText(q string) string {
	return strings.Map(func(r rune) rune {
		if r == '%' || r == '_' {
			return -1
		}
		return r
	}, strings.TrimSpace(q))
}

// SanitizeGenres strips quote characters, trims whitespace and drops empty
// entries. Bad genre input is corrected, never rejected.
func SanitizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.ReplaceAll(g, "'", "")
		g = strings.ReplaceAll(g, `"`, "")
		g = strings.TrimSpace(g)
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}
