package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

type Notifier interface {
	NotifyEventPublished(ctx context.Context, organizer *domain.User, event *domain.Event)
	NotifyAttendanceConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyNewFollower(ctx context.Context, followee, follower *domain.User)
}
