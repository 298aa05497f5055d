package services

import (
	"context"
	"errors"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UpdateProfileParams carries the optional profile changes; empty fields are
// left untouched. NewPassword requires CurrentPassword to verify.
type UpdateProfileParams struct {
	Email           string
	Image           string
	CurrentPassword string
	NewPassword     string
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	existing, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     models.UserTypeUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.WithError(err).WithField("username", username).Error("Failed to create user")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.UserID,
		"username": user.Username,
	}).Info("User registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if params.Email != "" && params.Email != user.Email {
		inUse, err := s.users.EmailInUse(ctx, params.Email, userID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrDuplicateEmail
		}
		updates["email"] = params.Email
	}

	if params.Image != "" {
		updates["image"] = params.Image
	}

	if params.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.CurrentPassword)); err != nil {
			return nil, ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(params.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}

	if err := s.users.Update(ctx, userID, updates); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to update profile")
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}
