package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

// DraftPublisher сохраняет черновики мастера и отдаёт события для режима редактирования.
type DraftPublisher interface {
	CreateFromDraft(ctx context.Context, draft domain.Draft) (*domain.Event, error)
	UpdateFromDraft(ctx context.Context, draft domain.Draft) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}
