package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mediamate-backend/internal/middleware"
	"mediamate-backend/internal/repository"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"
	"mediamate-backend/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RequestHandler struct {
	service services.RequestService
	logger  *logrus.Logger
}

func NewRequestHandler(service services.RequestService, logger *logrus.Logger) *RequestHandler {
	return &RequestHandler{
		service: service,
		logger:  logger,
	}
}

// Create serves POST /requests, a user's proposal for a new catalog entry.
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	var req ContentRequestBody
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(req.Description != "", "description", "must be provided")
	v.Check(req.ContentType != "", "content_type", "must be provided")
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	request, err := h.service.Create(c.Context(), userID, req.ContentType, req.Title, req.Description, req.Image)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidContentType) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Content type must be Book, Movie or Game")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create request")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Request created successfully", request)
}

func (h *RequestHandler) ListOwn(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	requests, err := h.service.ListOwn(c.Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load requests")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Requests retrieved successfully", requests)
}

// AdminList serves GET /admin/requests: pending requests awaiting a decision
// plus already decided ones.
func (h *RequestHandler) AdminList(c *fiber.Ctx) error {
	pending, err := h.service.Pending(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load requests")
	}
	completed, err := h.service.Completed(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load requests")
	}

	data := fiber.Map{
		"pending":   pending,
		"completed": completed,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Requests retrieved successfully", data)
}

func (h *RequestHandler) AdminDetail(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	detail, err := h.service.Detail(c.Context(), uint(requestID))
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Request not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load request")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Request retrieved successfully", detail)
}

// Decide serves POST /admin/requests/:id/decision. Accepting publishes the
// item into the catalog; overrides let the admin fix the submitted fields.
func (h *RequestHandler) Decide(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	err = h.service.Decide(c.Context(), uint(requestID), req.Decision, services.RequestOverrides{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Genres:      splitCommaList(req.Genres),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Request not found")
		case errors.Is(err, services.ErrInvalidDecision):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Decision must be accept or decline")
		case errors.Is(err, services.ErrRequestDecided):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Request already decided")
		default:
			h.logger.WithError(err).WithField("request_id", requestID).Error("Failed to decide request")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decide request")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Decision recorded successfully", nil)
}

// PublishDirect serves POST /admin/content: an admin adds an item without
// the request round-trip.
func (h *RequestHandler) PublishDirect(c *fiber.Ctx) error {
	adminID, _ := middleware.CurrentUserID(c)

	var req ContentRequestBody
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(req.Description != "", "description", "must be provided")
	v.Check(req.ContentType != "", "content_type", "must be provided")
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	contentID, err := h.service.PublishDirect(c.Context(), adminID, req.ContentType, req.Title, req.Description, req.Image, splitCommaList(req.Genres))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidContentType) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Content type must be Book, Movie or Game")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to publish content")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Content published successfully", fiber.Map{"content_id": contentID})
}

func splitCommaList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
