package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	Delete(ctx context.Context, id string) error
}
