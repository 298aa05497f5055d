package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository interface {
	// FindAll returns every community in randomized discovery order.
	FindAll(ctx context.Context) ([]models.Community, error)
	// Search matches keywords against community keywords and names,
	// ranking by how many keywords hit.
	Search(ctx context.Context, keywords []string) ([]models.Community, error)
	FindByID(ctx context.Context, roomID uint) (*models.Community, error)
	Create(ctx context.Context, community *models.Community) error
	// Members lists the users who favorited the room.
	Members(ctx context.Context, roomID uint) ([]models.CommunityMember, error)
	Messages(ctx context.Context, roomID uint) ([]models.MessageWithUser, error)
	CreateMessage(ctx context.Context, message *models.Message) error
}

type communityRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCommunityRepository(db *database.Database) CommunityRepository {
	return &communityRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *communityRepository) FindAll(ctx context.Context) ([]models.Community, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var communities []models.Community
	err := r.db.WithContext(ctx).Order("RANDOM()").Find(&communities).Error
	return communities, err
}

func (r *communityRepository) Search(ctx context.Context, keywords []string) ([]models.Community, error) {
	if len(keywords) == 0 {
		return []models.Community{}, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	// The per-keyword fragments repeat a fixed parameterized shape; only
	// the bound patterns vary.
	keywordConds := make([]string, len(keywords))
	nameConds := make([]string, len(keywords))
	keywordCases := make([]string, len(keywords))
	nameCases := make([]string, len(keywords))
	patterns := make([]interface{}, len(keywords))
	for i, kw := range keywords {
		keywordConds[i] = "LOWER(keywords) LIKE ?"
		nameConds[i] = "LOWER(chat_name) LIKE ?"
		keywordCases[i] = "CASE WHEN LOWER(keywords) LIKE ? THEN 1 ELSE 0 END"
		nameCases[i] = "CASE WHEN LOWER(chat_name) LIKE ? THEN 1 ELSE 0 END"
		patterns[i] = "%" + strings.ToLower(kw) + "%"
	}

	where := "(" + strings.Join(keywordConds, " OR ") + ") OR (" + strings.Join(nameConds, " OR ") + ")"
	order := "(" + strings.Join(keywordCases, " + ") + ") DESC, (" + strings.Join(nameCases, " + ") + ") DESC"

	args := make([]interface{}, 0, len(keywords)*4)
	args = append(args, patterns...)
	args = append(args, patterns...)
	orderArgs := make([]interface{}, 0, len(keywords)*2)
	orderArgs = append(orderArgs, patterns...)
	orderArgs = append(orderArgs, patterns...)

	var communities []models.Community
	err := r.db.WithContext(ctx).
		Where(where, args...).
		Clauses(clause.OrderBy{Expression: gorm.Expr(order, orderArgs...)}).
		Find(&communities).Error
	return communities, err
}

func (r *communityRepository) FindByID(ctx context.Context, roomID uint) (*models.Community, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var community models.Community
	err := r.db.WithContext(ctx).First(&community, "room_id = ?", roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) Create(ctx context.Context, community *models.Community) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) Members(ctx context.Context, roomID uint) ([]models.CommunityMember, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var members []models.CommunityMember
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select("users.user_id, users.username, users.image").
		Joins("JOIN users ON users.user_id = favorites.user_id").
		Where("favorites.room_id = ?", roomID).
		Scan(&members).Error
	return members, err
}

func (r *communityRepository) Messages(ctx context.Context, roomID uint) ([]models.MessageWithUser, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var messages []models.MessageWithUser
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.message_id, messages.room_id, messages.from_user, users.username, messages.content, messages.time").
		Joins("JOIN users ON users.user_id = messages.from_user").
		Where("messages.room_id = ?", roomID).
		Order("messages.message_id ASC").
		Scan(&messages).Error
	return messages, err
}

func (r *communityRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(message).Error
}
