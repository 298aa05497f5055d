package services

import (
	"context"
	"errors"
	"strings"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	RequestDecisionAccept  = "accept"
	RequestDecisionDecline = "decline"
)

var (
	ErrInvalidDecision = errors.New("decision must be accept or decline")
	ErrRequestDecided  = errors.New("request already decided")
)

// RequestOverrides lets an admin correct a request's fields before the item
// is published; empty fields keep the requester's values. Genres are
// attached to the published item.
type RequestOverrides struct {
	Title       string
	Description string
	Image       string
	Genres      []string
}

type RequestService interface {
	Create(ctx context.Context, userID uint, contentType, title, description, image string) (*models.Request, error)
	ListOwn(ctx context.Context, userID uint) ([]models.Request, error)
	// Pending and Completed back the two halves of the admin review screen.
	Pending(ctx context.Context) ([]models.RequestWithUser, error)
	Completed(ctx context.Context) ([]models.RequestWithUser, error)
	Detail(ctx context.Context, requestID uint) (*models.RequestWithUser, error)
	// Decide accepts or declines a pending request. Accepting publishes the
	// item into the catalog and the status flips in the same pass.
	Decide(ctx context.Context, requestID uint, decision string, overrides RequestOverrides) error
	// PublishDirect lets an admin add a catalog item without the request
	// round-trip; a pre-approved request row keeps the audit trail.
	PublishDirect(ctx context.Context, adminID uint, contentType, title, description, image string, genres []string) (uint, error)
}

type requestService struct {
	requests repository.RequestRepository
	content  repository.ContentRepository
	genres   repository.GenreRepository
	logger   *logrus.Logger
}

func NewRequestService(
	requests repository.RequestRepository,
	content repository.ContentRepository,
	genres repository.GenreRepository,
	logger *logrus.Logger,
) RequestService {
	return &requestService{
		requests: requests,
		content:  content,
		genres:   genres,
		logger:   logger,
	}
}

func (s *requestService) Create(ctx context.Context, userID uint, contentType, title, description, image string) (*models.Request, error) {
	t, ok := models.ParseContentType(contentType)
	if !ok {
		return nil, repository.ErrInvalidContentType
	}

	request := &models.Request{
		UserID:      userID,
		Status:      models.RequestStatusPending,
		ContentType: string(t),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to create request")
		return nil, err
	}
	return request, nil
}

func (s *requestService) ListOwn(ctx context.Context, userID uint) ([]models.Request, error) {
	return s.requests.FindByUser(ctx, userID)
}

func (s *requestService) Pending(ctx context.Context) ([]models.RequestWithUser, error) {
	return s.requests.FindByStatuses(ctx, models.RequestStatusPending)
}

func (s *requestService) Completed(ctx context.Context) ([]models.RequestWithUser, error) {
	return s.requests.FindByStatuses(ctx, models.RequestStatusApproved, models.RequestStatusRejected)
}

func (s *requestService) Detail(ctx context.Context, requestID uint) (*models.RequestWithUser, error) {
	return s.requests.FindDetail(ctx, requestID)
}

func (s *requestService) Decide(ctx context.Context, requestID uint, decision string, overrides RequestOverrides) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != models.RequestStatusPending {
		return ErrRequestDecided
	}

	switch decision {
	case RequestDecisionDecline:
		return s.requests.UpdateStatus(ctx, requestID, models.RequestStatusRejected)
	case RequestDecisionAccept:
		t, ok := models.ParseContentType(request.ContentType)
		if !ok {
			return repository.ErrInvalidContentType
		}

		title := request.Title
		if overrides.Title != "" {
			title = overrides.Title
		}
		description := request.Description
		if overrides.Description != "" {
			description = overrides.Description
		}
		image := request.Image
		if overrides.Image != "" {
			image = overrides.Image
		}

		contentID, err := s.content.CreateItem(ctx, t, title, description, image, request.UserID)
		if err != nil {
			s.logger.WithError(err).WithField("request_id", requestID).
				Error("Failed to publish requested item")
			return err
		}
		if err := s.attachGenres(ctx, contentID, overrides.Genres); err != nil {
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"content_id": contentID,
		}).Info("Request approved")

		return s.requests.UpdateStatus(ctx, requestID, models.RequestStatusApproved)
	default:
		return ErrInvalidDecision
	}
}

func (s *requestService) PublishDirect(ctx context.Context, adminID uint, contentType, title, description, image string, genres []string) (uint, error) {
	t, ok := models.ParseContentType(contentType)
	if !ok {
		return 0, repository.ErrInvalidContentType
	}

	request := &models.Request{
		UserID:      adminID,
		Status:      models.RequestStatusApproved,
		ContentType: string(t),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return 0, err
	}

	contentID, err := s.content.CreateItem(ctx, t, request.Title, request.Description, request.Image, adminID)
	if err != nil {
		s.logger.WithError(err).WithField("request_id", request.RequestID).
			Error("Failed to publish item")
		return 0, err
	}
	if err := s.attachGenres(ctx, contentID, genres); err != nil {
		return 0, err
	}
	return contentID, nil
}

func (s *requestService) attachGenres(ctx context.Context, contentID uint, genres []string) error {
	for _, name := range SanitizeGenres(genres) {
		genre, err := s.genres.FindOrCreate(ctx, name)
		if err != nil {
			s.logger.WithError(err).WithField("genre", name).Error("Failed to resolve genre")
			return err
		}
		if err := s.genres.Associate(ctx, contentID, genre.GenreID); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"content_id": contentID,
				"genre_id":   genre.GenreID,
			}).Error("Failed to attach genre")
			return err
		}
	}
	return nil
}
