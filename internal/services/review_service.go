package services

import (
	"context"
	"errors"

	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService interface {
	// SubmitOrUpdate stores the user's review of an item, replacing any
	// previous one, and keeps the item's aggregate rating in sync.
	SubmitOrUpdate(ctx context.Context, contentID, userID uint, rating float64, comment string) error
}

type reviewService struct {
	repo   repository.ReviewRepository
	logger *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reviewService) SubmitOrUpdate(ctx context.Context, contentID, userID uint, rating float64, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	if err := s.repo.SubmitOrUpdate(ctx, contentID, userID, rating, comment); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return err
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"content_id": contentID,
			"user_id":    userID,
		}).Error("Failed to save review")
		return err
	}
	return nil
}
