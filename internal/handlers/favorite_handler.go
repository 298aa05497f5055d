package handlers

import (
	"errors"

	"mediamate-backend/internal/middleware"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewFavoriteHandler(service services.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

// Toggle serves POST /favorites with either content_id or room_id set.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	var req FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	action, err := h.service.Toggle(c.Context(), userID, req.ContentID, req.RoomID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFavoriteTarget) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Exactly one of content_id or room_id must be provided")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update favorite")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Favorite "+action, fiber.Map{"action": action})
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	list, err := h.service.List(c.Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load favorites")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Favorites retrieved successfully", list)
}
