package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports/mocks"
	"github.com/stpnv0/Tourify/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWizardService(t *testing.T) (*WizardService, *wizard.Registry, *mocks.MockDraftPublisher) {
	t.Helper()
	registry := wizard.NewRegistry(time.Hour)
	publisher := mocks.NewMockDraftPublisher(t)
	return NewWizardService(registry, publisher, newTestLogger(t)), registry, publisher
}

func mainInfoForm() *wizard.MainInfo {
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	return &wizard.MainInfo{
		Title:    "Jazz Night",
		StartsAt: start,
		EndsAt:   start.Add(3 * time.Hour),
		Location: "Seattle",
		Capacity: 100,
		Price:    25,
	}
}

func walkToVenue(t *testing.T, svc *WizardService, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Next(ctx, id, mainInfoForm())
	require.NoError(t, err)
	_, err = svc.Next(ctx, id, &wizard.Photos{})
	require.NoError(t, err)
	sess, err := svc.Next(ctx, id, &wizard.Ticketing{
		TicketTypes: []wizard.TicketTypeInput{{Type: "GA", Price: 25, Quantity: 100}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StepVenue, sess.Step)
}

func TestWizardService_Open_Create(t *testing.T) {
	svc, registry, _ := newWizardService(t)

	sess, err := svc.Open(context.Background(), "org-1", "")

	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, domain.StepMainInfo, sess.Step)
	assert.Equal(t, "org-1", sess.Draft.OrganizerID)
	assert.False(t, sess.Draft.EditMode())
	assert.Equal(t, 1, registry.Len())
}

func TestWizardService_Open_RequiresOrganizer(t *testing.T) {
	svc, _, _ := newWizardService(t)

	_, err := svc.Open(context.Background(), "", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWizardService_Open_EditSeedsDraft(t *testing.T) {
	svc, _, publisher := newWizardService(t)

	existing := &domain.Event{
		ID:          "e1",
		OrganizerID: "org-1",
		EventInfo:   domain.EventInfo{Title: "Jazz Night", Location: "Seattle", Capacity: 100},
	}
	publisher.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	sess, err := svc.Open(context.Background(), "org-1", "e1")

	require.NoError(t, err)
	assert.True(t, sess.Draft.EditMode())
	assert.Equal(t, "e1", sess.Draft.EventID)
	assert.Equal(t, "Jazz Night", sess.Draft.Title)
}

func TestWizardService_Open_EditForeignEvent(t *testing.T) {
	svc, registry, publisher := newWizardService(t)

	publisher.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OrganizerID: "org-2"}, nil)

	_, err := svc.Open(context.Background(), "org-1", "e1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, registry.Len())
}

func TestWizardService_NextAndBack(t *testing.T) {
	svc, _, _ := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.ID, mainInfoForm())
	require.NoError(t, err)
	assert.Equal(t, domain.StepPhotos, sess.Step)

	sess, err = svc.Back(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepMainInfo, sess.Step)
	assert.Equal(t, "Jazz Night", sess.Draft.Title)

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepMainInfo, got.Step)
}

func TestWizardService_Next_ValidationKeepsStep(t *testing.T) {
	svc, _, _ := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)

	form := mainInfoForm()
	form.Title = ""
	_, err = svc.Next(ctx, sess.ID, form)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("title"))

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepMainInfo, got.Step)
}

func TestWizardService_UnknownSession(t *testing.T) {
	svc, _, _ := newWizardService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	_, err = svc.Next(ctx, "nope", mainInfoForm())
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	_, err = svc.Back(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	_, err = svc.Submit(ctx, "nope", &wizard.Venue{})
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	assert.ErrorIs(t, svc.Close(ctx, "nope"), domain.ErrDraftNotFound)
}

func TestWizardService_Submit_CreatesEvent(t *testing.T) {
	svc, registry, publisher := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)
	walkToVenue(t, svc, sess.ID)

	var submitted domain.Draft
	publisher.EXPECT().CreateFromDraft(mock.Anything, mock.Anything).
		Run(func(_ context.Context, d domain.Draft) { submitted = d }).
		Return(&domain.Event{ID: "e1", OrganizerID: "org-1"}, nil)

	event, err := svc.Submit(ctx, sess.ID, &wizard.Venue{VenueName: "Blue Note"})

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "Jazz Night", submitted.Title)
	assert.Equal(t, "Blue Note", submitted.VenueName)
	require.Len(t, submitted.TicketTypes, 1)
	assert.Equal(t, 0, registry.Len())

	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestWizardService_Submit_EditUpdatesEvent(t *testing.T) {
	svc, _, publisher := newWizardService(t)
	ctx := context.Background()

	existing := &domain.Event{ID: "e1", OrganizerID: "org-1", EventInfo: domain.EventInfo{Title: "Old"}}
	publisher.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	sess, err := svc.Open(ctx, "org-1", "e1")
	require.NoError(t, err)
	walkToVenue(t, svc, sess.ID)

	publisher.EXPECT().UpdateFromDraft(mock.Anything, mock.MatchedBy(func(d domain.Draft) bool {
		return d.EventID == "e1" && d.Title == "Jazz Night"
	})).Return(&domain.Event{ID: "e1", OrganizerID: "org-1"}, nil)

	event, err := svc.Submit(ctx, sess.ID, &wizard.Venue{})

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
}

func TestWizardService_Submit_FailureKeepsSession(t *testing.T) {
	svc, registry, publisher := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)
	walkToVenue(t, svc, sess.ID)

	dbErr := errors.New("db down")
	publisher.EXPECT().CreateFromDraft(mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	_, err = svc.Submit(ctx, sess.ID, &wizard.Venue{VenueName: "Blue Note"})

	require.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, registry.Len())

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepVenue, got.Step)
	assert.Equal(t, "Blue Note", got.Draft.VenueName)
}

func TestWizardService_Submit_BeforeFinalStep(t *testing.T) {
	svc, _, _ := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, sess.ID, &wizard.Venue{})

	assert.ErrorIs(t, err, domain.ErrNotFinalStep)
}

func TestWizardService_Close(t *testing.T) {
	svc, registry, _ := newWizardService(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, sess.ID))
	assert.Equal(t, 0, registry.Len())

	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestWizardService_ExpireDrafts(t *testing.T) {
	registry := wizard.NewRegistry(-time.Second)
	svc := NewWizardService(registry, mocks.NewMockDraftPublisher(t), newTestLogger(t))
	ctx := context.Background()

	sess, err := svc.Open(ctx, "org-1", "")
	require.NoError(t, err)

	expired := svc.ExpireDrafts(ctx)

	assert.Equal(t, []string{sess.ID}, expired)
	assert.Equal(t, 0, registry.Len())
}
