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

type EventService struct {
	repo           ports.EventRepo
	attendanceRepo ports.AttendanceRepo
	userRepo       ports.UserRepo
	notifier       ports.Notifier
	logger         logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	attendanceRepo ports.AttendanceRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// CreateFromDraft публикует событие, собранное мастером.
func (s *EventService) CreateFromDraft(ctx context.Context, draft domain.Draft) (*domain.Event, error) {
	if draft.OrganizerID == "" {
		return nil, fmt.Errorf("%w: organizer_id is required", domain.ErrValidation)
	}

	organizer, err := s.userRepo.GetByID(ctx, draft.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: draft.OrganizerID,
		EventInfo:   draft.EventInfo.Clone(),
		Status:      domain.EventStatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	assignChildIDs(event)

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event published",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
		logger.Int("ticket_types", len(event.TicketTypes)),
	)

	go s.notifier.NotifyEventPublished(context.WithoutCancel(ctx), organizer, event)

	return event, nil
}

// UpdateFromDraft сохраняет черновик, открытый в режиме редактирования.
func (s *EventService) UpdateFromDraft(ctx context.Context, draft domain.Draft) (*domain.Event, error) {
	if !draft.EditMode() {
		return nil, fmt.Errorf("%w: draft has no event_id", domain.ErrValidation)
	}

	event, err := s.repo.GetByID(ctx, draft.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != draft.OrganizerID {
		return nil, domain.ErrForbidden
	}

	event.EventInfo = draft.EventInfo.Clone()
	event.UpdatedAt = time.Now().UTC()
	assignChildIDs(event)

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.attendanceRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	details.Attendees = make([]domain.Attendance, len(attendees))
	for i, a := range attendees {
		details.Attendees[i] = *a
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, filter)
}

// Delete удаляет событие. Удалить может только организатор.
func (s *EventService) Delete(ctx context.Context, id, organizerID string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return domain.ErrForbidden
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("organizer_id", organizerID),
	)

	return nil
}

func assignChildIDs(e *domain.Event) {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == "" {
			e.TicketTypes[i].ID = uuid.New().String()
		}
	}
	for i := range e.Attachments {
		if e.Attachments[i].ID == "" {
			e.Attachments[i].ID = uuid.New().String()
		}
	}
}
