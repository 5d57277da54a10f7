package ports

import (
	"context"

	"github.com/stpnv0/Tourify/internal/domain"
)

type AttendanceRepo interface {
	Create(ctx context.Context, a *domain.Attendance) error
	Delete(ctx context.Context, eventID, userID string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Attendance, error)
}
