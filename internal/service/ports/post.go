package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

type PostRepo interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Post, error)
	Feed(ctx context.Context, userID string, limit int) ([]*domain.Post, error)
	Like(ctx context.Context, postID, userID string) (int, error)
	Unlike(ctx context.Context, postID, userID string) (int, error)
	AddComment(ctx context.Context, c *domain.Comment) error
	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
}
