package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports"
	"github.com/stpnv0/Tourify/internal/wizard"
	"github.com/wb-go/wbf/logger"
)

// WizardService управляет сессиями мастера создания и редактирования событий.
type WizardService struct {
	registry  *wizard.Registry
	publisher ports.DraftPublisher
	logger    logger.Logger
}

func NewWizardService(registry *wizard.Registry, publisher ports.DraftPublisher, logger logger.Logger) *WizardService {
	return &WizardService{
		registry:  registry,
		publisher: publisher,
		logger:    logger,
	}
}

// Open открывает мастер. Если eventID задан, мастер редактирует существующее событие организатора.
func (s *WizardService) Open(ctx context.Context, organizerID, eventID string) (*domain.DraftSession, error) {
	if organizerID == "" {
		return nil, fmt.Errorf("%w: organizer_id is required", domain.ErrValidation)
	}

	seed := domain.Draft{OrganizerID: organizerID}
	submit := s.publisher.CreateFromDraft

	if eventID != "" {
		event, err := s.publisher.GetByID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		if event.OrganizerID != organizerID {
			return nil, domain.ErrForbidden
		}
		seed = event.Draft()
		submit = s.publisher.UpdateFromDraft
	}

	w := wizard.New(submit)
	if err := w.Open(seed); err != nil {
		return nil, fmt.Errorf("open wizard: %w", err)
	}

	sess := s.registry.Add(w)

	s.logger.Info("draft opened",
		logger.String("session_id", sess.ID),
		logger.String("organizer_id", organizerID),
		logger.Any("edit_mode", seed.EditMode()),
	)

	return snapshot(sess), nil
}

func (s *WizardService) Get(_ context.Context, sessionID string) (*domain.DraftSession, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

func (s *WizardService) Next(_ context.Context, sessionID string, form wizard.Form) (*domain.DraftSession, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err = sess.Wizard.Next(form); err != nil {
		return nil, err
	}

	return snapshot(sess), nil
}

func (s *WizardService) Back(_ context.Context, sessionID string) (*domain.DraftSession, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err = sess.Wizard.Back(); err != nil {
		return nil, err
	}

	return snapshot(sess), nil
}

// Submit отправляет черновик. При ошибке сохранения сессия остаётся открытой на последнем шаге.
func (s *WizardService) Submit(ctx context.Context, sessionID string, form wizard.Form) (*domain.Event, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	event, err := sess.Wizard.Submit(ctx, form)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.Error("draft submission failed",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.registry.Remove(sessionID)

	s.logger.Info("draft submitted",
		logger.String("session_id", sessionID),
		logger.String("event_id", event.ID),
	)

	return event, nil
}

func (s *WizardService) Close(_ context.Context, sessionID string) error {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return err
	}

	sess.Wizard.Close()
	s.registry.Remove(sessionID)

	s.logger.Info("draft closed", logger.String("session_id", sessionID))

	return nil
}

// ExpireDrafts закрывает брошенные сессии и возвращает их идентификаторы.
func (s *WizardService) ExpireDrafts(_ context.Context) []string {
	return s.registry.Expire()
}

func snapshot(sess wizard.Session) *domain.DraftSession {
	step, draft := sess.Wizard.Snapshot()
	return &domain.DraftSession{
		ID:        sess.ID,
		Step:      step,
		Draft:     draft,
		UpdatedAt: sess.TouchedAt,
	}
}
