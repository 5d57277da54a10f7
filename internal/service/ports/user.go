package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	Suggested(ctx context.Context, userID string, limit int) ([]*domain.SuggestedUser, error)
}
