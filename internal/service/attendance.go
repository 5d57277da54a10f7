package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AttendanceService struct {
	attendanceRepo ports.AttendanceRepo
	eventRepo      ports.EventRepo
	userRepo       ports.UserRepo
	notifier       ports.Notifier
	logger         logger.Logger
}

func NewAttendanceService(
	attendanceRepo ports.AttendanceRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *AttendanceService) Attend(
	ctx context.Context,
	eventID, userID string,
	status domain.AttendanceStatus,
) (*domain.Attendance, error) {
	if status == "" {
		status = domain.AttendanceStatusGoing
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown attendance status %q", domain.ErrValidation, status)
	}

	// проверка, что eventID, userID exist
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.Status == domain.EventStatusCancelled {
		return nil, fmt.Errorf("%w: event is cancelled", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	attendance := &domain.Attendance{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	s.logger.Info("attendance created",
		logger.String("attendance_id", attendance.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("status", string(status)),
	)

	if status == domain.AttendanceStatusGoing {
		go s.notifier.NotifyAttendanceConfirmed(context.WithoutCancel(ctx), user, event)
	}

	return attendance, nil
}

func (s *AttendanceService) Cancel(ctx context.Context, eventID, userID string) error {
	if err := s.attendanceRepo.Delete(ctx, eventID, userID); err != nil {
		return fmt.Errorf("cancel attendance: %w", err)
	}

	s.logger.Info("attendance cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}

func (s *AttendanceService) ListByUser(ctx context.Context, userID string) ([]*domain.Attendance, error) {
	return s.attendanceRepo.ListByUser(ctx, userID)
}

func (s *AttendanceService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	return s.attendanceRepo.ListByEvent(ctx, eventID)
}
