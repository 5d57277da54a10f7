package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	maxPostLength    = 2000
	maxCommentLength = 1000
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type FeedService struct {
	postRepo  ports.PostRepo
	eventRepo ports.EventRepo
	logger    logger.Logger
}

func NewFeedService(postRepo ports.PostRepo, eventRepo ports.EventRepo, logger logger.Logger) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *FeedService) CreatePost(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(content) > maxPostLength {
		return nil, fmt.Errorf("%w: content must be at most %d characters", domain.ErrValidation, maxPostLength)
	}

	if input.EventID != nil {
		if _, err := s.eventRepo.GetByID(ctx, *input.EventID); err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
	}

	post := &domain.Post{
		ID:        uuid.New().String(),
		AuthorID:  input.AuthorID,
		EventID:   input.EventID,
		Content:   content,
		ImageURL:  strings.TrimSpace(input.ImageURL),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info("post created",
		logger.String("post_id", post.ID),
		logger.String("author_id", post.AuthorID),
	)

	return post, nil
}

func (s *FeedService) EventPosts(ctx context.Context, eventID string) ([]*domain.Post, error) {
	return s.postRepo.ListByEvent(ctx, eventID)
}

func (s *FeedService) Feed(ctx context.Context, userID string, limit int) ([]*domain.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	return s.postRepo.Feed(ctx, userID, limit)
}

// Like возвращает актуальное число лайков, по нему клиент сверяет свой оптимистичный счётчик.
func (s *FeedService) Like(ctx context.Context, postID, userID string) (int, error) {
	count, err := s.postRepo.Like(ctx, postID, userID)
	if err != nil {
		return 0, fmt.Errorf("like post: %w", err)
	}
	return count, nil
}

func (s *FeedService) Unlike(ctx context.Context, postID, userID string) (int, error) {
	count, err := s.postRepo.Unlike(ctx, postID, userID)
	if err != nil {
		return 0, fmt.Errorf("unlike post: %w", err)
	}
	return count, nil
}

func (s *FeedService) Comment(ctx context.Context, postID, authorID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, fmt.Errorf("%w: content must be at most %d characters", domain.ErrValidation, maxCommentLength)
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return comment, nil
}

func (s *FeedService) Comments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.postRepo.ListComments(ctx, postID)
}
