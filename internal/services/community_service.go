package services

import (
	"context"
	"strings"
	"time"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type CommunityService interface {
	// List returns communities matching the comma-separated keyword query,
	// or all communities in randomized order when the query is empty. With
	// a userID, each entry carries the caller's favorite state.
	List(ctx context.Context, query string, userID *uint) ([]models.CommunityView, error)
	Create(ctx context.Context, creatorID uint, name, keywords, image string) (*models.Community, error)
	// Room loads one community with its members and message history.
	Room(ctx context.Context, roomID uint) (*models.RoomView, error)
	// Messages returns a room's message history, oldest first.
	Messages(ctx context.Context, roomID uint) ([]models.MessageWithUser, error)
	// PostMessage appends a chat message after verifying the room exists.
	PostMessage(ctx context.Context, roomID, userID uint, content string) (*models.Message, error)
}

type communityService struct {
	communities repository.CommunityRepository
	favorites   repository.FavoriteRepository
	logger      *logrus.Logger
}

func NewCommunityService(
	communities repository.CommunityRepository,
	favorites repository.FavoriteRepository,
	logger *logrus.Logger,
) CommunityService {
	return &communityService{
		communities: communities,
		favorites:   favorites,
		logger:      logger,
	}
}

func (s *communityService) List(ctx context.Context, query string, userID *uint) ([]models.CommunityView, error) {
	var (
		communities []models.Community
		err         error
	)
	keywords := splitKeywords(query)
	if len(keywords) == 0 {
		communities, err = s.communities.FindAll(ctx)
	} else {
		communities, err = s.communities.Search(ctx, keywords)
	}
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("Failed to list communities")
		return nil, err
	}

	views := make([]models.CommunityView, 0, len(communities))
	for _, community := range communities {
		view := models.CommunityView{Community: community}
		if userID != nil {
			fav, err := s.favorites.IsFavoriteRoom(ctx, *userID, community.RoomID)
			if err != nil {
				return nil, err
			}
			view.IsFavorite = fav
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *communityService) Create(ctx context.Context, creatorID uint, name, keywords, image string) (*models.Community, error) {
	community := &models.Community{
		ChatName:  strings.TrimSpace(name),
		Keywords:  strings.TrimSpace(keywords),
		Image:     strings.TrimSpace(image),
		CreatorID: creatorID,
	}
	if err := s.communities.Create(ctx, community); err != nil {
		s.logger.WithError(err).WithField("chat_name", community.ChatName).
			Error("Failed to create community")
		return nil, err
	}
	return community, nil
}

func (s *communityService) Room(ctx context.Context, roomID uint) (*models.RoomView, error) {
	community, err := s.communities.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	members, err := s.communities.Members(ctx, roomID)
	if err != nil {
		return nil, err
	}
	messages, err := s.communities.Messages(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &models.RoomView{
		Room:     *community,
		Members:  members,
		Messages: messages,
	}, nil
}

func (s *communityService) Messages(ctx context.Context, roomID uint) ([]models.MessageWithUser, error) {
	if _, err := s.communities.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.communities.Messages(ctx, roomID)
}

func (s *communityService) PostMessage(ctx context.Context, roomID, userID uint, content string) (*models.Message, error) {
	if _, err := s.communities.FindByID(ctx, roomID); err != nil {
		return nil, err
	}

	message := &models.Message{
		RoomID:   roomID,
		FromUser: userID,
		Content:  content,
		Time:     time.Now().UTC(),
	}
	if err := s.communities.CreateMessage(ctx, message); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"room_id": roomID,
			"user_id": userID,
		}).Error("Failed to post message")
		return nil, err
	}
	return message, nil
}

// splitKeywords breaks a comma-separated keyword query into trimmed,
// non-empty terms.
func splitKeywords(query string) []string {
	parts := strings.Split(query, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
