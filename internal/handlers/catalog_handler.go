package handlers

import (
	"errors"
	"strconv"

	"mediamate-backend/internal/middleware"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	catalog services.CatalogService
	reviews services.ReviewService
	logger  *logrus.Logger
}

func NewCatalogHandler(catalog services.CatalogService, reviews services.ReviewService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		reviews: reviews,
		logger:  logger,
	}
}

// Genres serves GET /genres, the filter options for the search form.
func (h *CatalogHandler) Genres(c *fiber.Ctx) error {
	genres, err := h.catalog.Genres(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	home, err := h.catalog.Home(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load home content")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Home content retrieved successfully", home)
}

// Category serves GET /category/:type, one randomized page of a single content type
// plus its top-rated strip.
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, topRated, err := h.catalog.CategoryPage(c.Context(), c.Params("type"), page)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load category")
	}

	meta := utils.PaginationMeta{
		Page:       result.CurrentPage,
		PageSize:   services.CategoryPageSize,
		Total:      result.TotalCount,
		TotalPages: result.TotalPages,
		StartPage:  result.StartPage,
		EndPage:    result.EndPage,
	}
	data := fiber.Map{
		"items":     result.Results,
		"top_rated": topRated,
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Category retrieved successfully", data, meta)
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	contentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	detail, err := h.catalog.Detail(c.Context(), c.Params("type"), uint(contentID), middleware.OptionalUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCategory):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found")
		case errors.Is(err, repository.ErrContentNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Content not found")
		default:
			h.logger.WithError(err).WithField("content_id", contentID).Error("Failed to load content detail")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load content")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Content retrieved successfully", detail)
}

// SubmitReview serves POST /category/:type/:id/review. A second submission by the
// same user replaces their earlier review.
func (h *CatalogHandler) SubmitReview(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	contentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.reviews.SubmitOrUpdate(c.Context(), uint(contentID), userID, req.Rating, req.Comment); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
		case errors.Is(err, repository.ErrContentNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Content not found")
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save review")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Review saved successfully", nil)
}
