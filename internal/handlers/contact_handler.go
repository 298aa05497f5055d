package handlers

import (
	"errors"

	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"
	"mediamate-backend/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	service services.MailService
	logger  *logrus.Logger
}

func NewContactHandler(service services.MailService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

// Submit serves POST /contact, forwarding the message to the site inbox.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	v.Check(req.Name != "", "name", "must be provided")
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(req.Message != "", "message", "must be provided")
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	if err := h.service.SendContact(req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, services.ErrMailNotConfigured) {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Contact form is temporarily unavailable")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Message sent successfully", nil)
}
