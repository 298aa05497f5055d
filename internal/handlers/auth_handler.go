package handlers

import (
	"errors"

	"mediamate-backend/internal/middleware"
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"
	"mediamate-backend/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	store   *session.Store
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, store *session.Store, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		store:   store,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	v.Check(req.Username != "", "username", "must be provided")
	v.Check(len(req.Username) <= 25, "username", "must not be more than 25 characters")
	v.Check(validator.Matches(req.Username, validator.UsernameRX), "username", "must contain only letters, numbers and underscores")
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(len(req.Password) >= 6, "password", "must be at least 6 characters")
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUsername):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Username already taken")
		case errors.Is(err, services.ErrDuplicateEmail):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered")
		default:
			h.logger.WithError(err).Error("Registration failed")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register")
		}
	}

	if err := h.startSession(c, user.UserID, user.Username, user.UserType); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Registered successfully", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		h.logger.WithError(err).Error("Login failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	if err := h.startSession(c, user.UserID, user.Username, user.UserType); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			h.logger.WithError(err).Error("Failed to destroy session")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.service.Profile(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", user)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := validator.New()
	if req.Email != "" {
		v.Check(validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	}
	if req.NewPassword != "" {
		v.Check(len(req.NewPassword) >= 6, "new_password", "must be at least 6 characters")
		v.Check(req.CurrentPassword != "", "current_password", "must be provided to change the password")
	}
	if !v.Valid() {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", v.Errors)
	}

	user, err := h.service.UpdateProfile(c.Context(), userID, services.UpdateProfileParams{
		Email:           req.Email,
		Image:           req.Image,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered")
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect")
		default:
			h.logger.WithError(err).WithField("user_id", userID).Error("Failed to update profile")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile updated successfully", user)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, userID uint, username, userType string) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	// Rotate the session id on privilege change.
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middleware.LocalUserID, userID)
	sess.Set(middleware.LocalUsername, username)
	sess.Set(middleware.LocalUserType, userType)
	return sess.Save()
}
