package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	service services.SearchService
	logger  *logrus.Logger
}

func NewSearchHandler(service services.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// Search serves GET /search. Genres arrive comma-separated in a single
// query parameter.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	params := models.SearchParams{
		Query:       c.Query("query", ""),
		ContentType: c.Query("contentType", ""),
		Page:        page,
	}
	if genres := c.Query("genres", ""); genres != "" {
		params.Genres = strings.Split(genres, ",")
	}

	result, err := h.service.Search(c.Context(), params)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Search failed, please try again")
	}

	meta := utils.PaginationMeta{
		Page:       result.CurrentPage,
		PageSize:   services.DefaultSearchPageSize,
		Total:      result.TotalCount,
		TotalPages: result.TotalPages,
		StartPage:  result.StartPage,
		EndPage:    result.EndPage,
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Search completed successfully", result.Results, meta)
}

// SubmitSearch serves the search form POST by redirecting to the canonical
// GET URL, so result pages stay shareable and refreshable.
func (h *SearchHandler) SubmitSearch(c *fiber.Ctx) error {
	var req SearchFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	values := url.Values{}
	if req.Query != "" {
		values.Set("query", req.Query)
	}
	if req.Genres != "" {
		values.Set("genres", req.Genres)
	}
	if req.ContentType != "" {
		values.Set("contentType", req.ContentType)
	}

	target := "/api/v1/search"
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}
