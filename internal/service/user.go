package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultSuggestedLimit = 10
	maxSuggestedLimit     = 50
)

type UserService struct {
	repo     ports.UserRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewUserService(repo ports.UserRepo, notifier ports.Notifier, logger logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.UserRoleFan
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		DisplayName:    displayName,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return fmt.Errorf("%w: users cannot follow themselves", domain.ErrValidation)
	}

	follower, err := s.repo.GetByID(ctx, followerID)
	if err != nil {
		return fmt.Errorf("check follower: %w", err)
	}
	followee, err := s.repo.GetByID(ctx, followeeID)
	if err != nil {
		return fmt.Errorf("check followee: %w", err)
	}

	if err = s.repo.Follow(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("follow: %w", err)
	}

	s.logger.Info("user followed",
		logger.String("follower_id", followerID),
		logger.String("followee_id", followeeID),
	)

	go s.notifier.NotifyNewFollower(context.WithoutCancel(ctx), followee, follower)

	return nil
}

func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if err := s.repo.Unfollow(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

func (s *UserService) Suggested(ctx context.Context, userID string, limit int) ([]*domain.SuggestedUser, error) {
	if limit <= 0 {
		limit = defaultSuggestedLimit
	}
	if limit > maxSuggestedLimit {
		limit = maxSuggestedLimit
	}

	return s.repo.Suggested(ctx, userID, limit)
}
