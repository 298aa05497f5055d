package services

import (
	"context"
	"errors"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var ErrInvalidFavoriteTarget = errors.New("favorite must target exactly one of content or room")

type FavoriteService interface {
	// Toggle flips the favorite and reports "added" or "removed".
	Toggle(ctx context.Context, userID uint, contentID, roomID *uint) (string, error)
	// List groups the user's favorites by kind.
	List(ctx context.Context, userID uint) (*models.FavoriteList, error)
}

type favoriteService struct {
	repo   repository.FavoriteRepository
	logger *logrus.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		repo:   repo,
		logger: logger,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID uint, contentID, roomID *uint) (string, error) {
	if (contentID == nil) == (roomID == nil) {
		return "", ErrInvalidFavoriteTarget
	}

	action, err := s.repo.Toggle(ctx, userID, contentID, roomID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to toggle favorite")
		return "", err
	}
	return action, nil
}

func (s *favoriteService) List(ctx context.Context, userID uint) (*models.FavoriteList, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list favorites")
		return nil, err
	}

	list := &models.FavoriteList{
		Books:       []models.FavoriteItem{},
		Movies:      []models.FavoriteItem{},
		Games:       []models.FavoriteItem{},
		Communities: []models.FavoriteItem{},
	}
	for _, item := range items {
		if item.Image == "" {
			item.Image = PlaceholderImage
		}
		switch item.ContentType {
		case string(models.ContentTypeBook):
			list.Books = append(list.Books, item)
		case string(models.ContentTypeMovie):
			list.Movies = append(list.Movies, item)
		case string(models.ContentTypeGame):
			list.Games = append(list.Games, item)
		case "Community":
			list.Communities = append(list.Communities, item)
		}
	}
	return list, nil
}
