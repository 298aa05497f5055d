package repository

import (
	"context"
	"errors"
	"time"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	// FindByUser lists a user's own requests, newest first.
	FindByUser(ctx context.Context, userID uint) ([]models.Request, error)
	// FindByStatuses lists requests with requester usernames attached.
	FindByStatuses(ctx context.Context, statuses ...string) ([]models.RequestWithUser, error)
	FindByID(ctx context.Context, requestID uint) (*models.Request, error)
	FindDetail(ctx context.Context, requestID uint) (*models.RequestWithUser, error)
	UpdateStatus(ctx context.Context, requestID uint, status string) error
}

type requestRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewRequestRepository(db *database.Database) RequestRepository {
	return &requestRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *requestRepository) Create(ctx context.Context, request *models.Request) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByUser(ctx context.Context, userID uint) ([]models.Request, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var requests []models.Request
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("request_id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) FindByStatuses(ctx context.Context, statuses ...string) ([]models.RequestWithUser, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var requests []models.RequestWithUser
	err := r.db.WithContext(ctx).
		Table("requests").
		Select("requests.request_id, requests.title, requests.description, requests.status, requests.content_type, requests.image, users.username").
		Joins("JOIN users ON users.user_id = requests.user_id").
		Where("requests.status IN ?", statuses).
		Order("requests.request_id DESC").
		Scan(&requests).Error
	return requests, err
}

func (r *requestRepository) FindByID(ctx context.Context, requestID uint) (*models.Request, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var request models.Request
	err := r.db.WithContext(ctx).First(&request, "request_id = ?", requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindDetail(ctx context.Context, requestID uint) (*models.RequestWithUser, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var detail models.RequestWithUser
	result := r.db.WithContext(ctx).
		Table("requests").
		Select("requests.request_id, requests.title, requests.description, requests.status, requests.content_type, requests.image, users.username").
		Joins("JOIN users ON users.user_id = requests.user_id").
		Where("requests.request_id = ?", requestID).
		Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotFound
	}
	return &detail, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, requestID uint, status string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Request{}).
		Where("request_id = ?", requestID).
		Update("status", status).Error
}
