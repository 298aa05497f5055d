package handlers

import (
	"mediamate-backend/internal/services"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storage *services.StorageService
	logger  *logrus.Logger
}

func NewUploadHandler(storage *services.StorageService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// PresignUpload serves GET /upload/presign. The client PUTs the image
// bytes straight to object storage using the returned URL.
func (h *UploadHandler) PresignUpload(c *fiber.Ctx) error {
	filename := c.Query("filename", "")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Filename must be provided")
	}

	folder := c.Query("folder", "")
	switch folder {
	case services.UploadFolderCovers, services.UploadFolderAvatars:
	case "":
		folder = services.UploadFolderCovers
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Folder must be covers or avatars")
	}

	uploadURL, publicURL, err := h.storage.PresignUpload(c.Context(), folder, filename)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate upload URL")
	}

	data := fiber.Map{
		"upload_url": uploadURL,
		"public_url": publicURL,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Upload URL generated successfully", data)
}
