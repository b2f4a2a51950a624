// Package memory contiene adaptadores en proceso para cuando Redis no está configurado.
// Solo sirven para una única instancia de la API.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
)

var _ auth.SessionStore = (*SessionStore)(nil)

type entry struct {
	session   auth.Session
	expiresAt time.Time
}

// SessionStore implementación de auth.SessionStore sobre un mapa protegido por mutex.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

// NewSessionStore construye el store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]entry), now: time.Now}
}

// Save guarda una copia de la sesión con expiración ttl.
func (s *SessionStore) Save(_ context.Context, sess *auth.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.items[sess.ID] = entry{session: *sess, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get devuelve (nil, nil) si no existe o ya expiró.
func (s *SessionStore) Get(_ context.Context, id string) (*auth.Session, error) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, nil
	}
	sess := e.session
	return &sess, nil
}

// Delete es idempotente.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}

// purgeLocked elimina sesiones vencidas; se llama con el lock tomado.
func (s *SessionStore) purgeLocked() {
	now := s.now()
	for id, e := range s.items {
		if !now.Before(e.expiresAt) {
			delete(s.items, id)
		}
	}
}
