package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"mediamate-backend/internal/middleware"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"
	"mediamate-backend/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommunityHandler struct {
	service services.CommunityService
	logger  *logrus.Logger
}

func NewCommunityHandler(service services.CommunityService, logger *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		logger:  logger,
	}
}

// List serves GET /communities, optionally filtered by a comma-separated
// keyword query.
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	communities, err := h.service.List(c.Context(), c.Query("query", ""), middleware.OptionalUserID(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load communities")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Communities retrieved successfully", communities)
}

// SubmitSearch redirects the community search form POST to the canonical
// GET URL.
func (h *CommunityHandler) SubmitSearch(c *fiber.Ctx) error {
	var req SearchFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	target := "/api/v1/communities"
	if req.Query != "" {
		values := url.Values{}
		values.Set("query", req.Query)
		target += "?" + values.Encode()
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *CommunityHandler) Create(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	var req CommunityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	v.Check(req.ChatName != "", "chat_name", "must be provided")
	v.Check(len(req.ChatName) <= 30, "chat_name", "must not be more than 30 characters")
	v.Check(len(req.Keywords) <= 150, "keywords", "must not be more than 150 characters")
	v.Check(len(req.Image) <= 255, "image", "must not be more than 255 characters")
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	community, err := h.service.Create(c.Context(), userID, req.ChatName, req.Keywords, req.Image)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create community")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Community created successfully", community)
}

// Room serves GET /communities/:id, the chat room payload.
func (h *CommunityHandler) Room(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	room, err := h.service.Room(c.Context(), uint(roomID))
	if err != nil {
		if errors.Is(err, repository.ErrCommunityNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Community not found")
		}
		h.logger.WithError(err).WithField("room_id", roomID).Error("Failed to load room")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load room")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Room retrieved successfully", room)
}

func (h *CommunityHandler) Messages(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	messages, err := h.service.Messages(c.Context(), uint(roomID))
	if err != nil {
		if errors.Is(err, repository.ErrCommunityNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Community not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load messages")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Messages retrieved successfully", messages)
}

func (h *CommunityHandler) PostMessage(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room ID")
	}

	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Content == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Message content must be provided")
	}

	message, err := h.service.PostMessage(c.Context(), uint(roomID), userID, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrCommunityNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Community not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to post message")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Message posted successfully", message)
}
