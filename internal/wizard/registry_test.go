package wizard

import (
	"testing"
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry(time.Minute)
	w := New(nil)

	s := r.Add(w)
	require.NotEmpty(t, s.ID)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, w, got.Wizard)
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry(time.Minute)

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry(time.Minute)
	s := r.Add(New(nil))

	r.Remove(s.ID)

	_, err := r.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ExpireClosesIdleSessions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(30 * time.Minute)
	r.now = func() time.Time { return now }

	idle := New(nil)
	require.NoError(t, idle.Open(domain.Draft{OrganizerID: "org-1"}))
	idleSession := r.Add(idle)

	now = now.Add(20 * time.Minute)
	active := r.Add(New(nil))

	now = now.Add(15 * time.Minute)
	expired := r.Expire()

	assert.Equal(t, []string{idleSession.ID}, expired)
	assert.Equal(t, 1, r.Len())

	step, _ := idle.Snapshot()
	assert.Equal(t, domain.StepClosed, step)

	_, err := r.Get(active.ID)
	assert.NoError(t, err)
}

func TestRegistry_GetExtendsLifetime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(30 * time.Minute)
	r.now = func() time.Time { return now }

	s := r.Add(New(nil))

	now = now.Add(25 * time.Minute)
	_, err := r.Get(s.ID)
	require.NoError(t, err)

	now = now.Add(25 * time.Minute)
	assert.Empty(t, r.Expire())
}
