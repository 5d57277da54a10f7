package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
)

type Session struct {
	ID        string
	Wizard    *Wizard
	TouchedAt time.Time
}

// Registry хранит открытые мастера по идентификатору сессии.
// Сессия, к которой не обращались дольше ttl, считается брошенной.
type Registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) Add(w *Wizard) Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Session{
		ID:        uuid.New().String(),
		Wizard:    w,
		TouchedAt: r.now().UTC(),
	}
	r.sessions[s.ID] = s
	return *s
}

// Get возвращает сессию и продлевает её жизнь.
func (r *Registry) Get(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, domain.ErrDraftNotFound
	}
	s.TouchedAt = r.now().UTC()
	return *s, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Expire удаляет брошенные сессии, закрывает их мастера и возвращает их идентификаторы.
func (r *Registry) Expire() []string {
	r.mu.Lock()
	cutoff := r.now().UTC().Add(-r.ttl)
	var expired []*Session
	for id, s := range r.sessions {
		if s.TouchedAt.Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	// Close ждёт возможной отправки, поэтому вызывается без блокировки реестра
	ids := make([]string, 0, len(expired))
	for _, s := range expired {
		s.Wizard.Close()
		ids = append(ids, s.ID)
	}
	return ids
}
