package auth

import (
	"context"
	"time"
)

// Session estado de servidor asociado a un token de sesión.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"usuario_id"`
	Username  string    `json:"usuario"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (s *Session) IsAdmin() bool { return s != nil && s.Role == "admin" }

// SessionStore puerto de almacenamiento de sesiones (Redis en producción, memoria en desarrollo).
// Get devuelve (nil, nil) si la sesión no existe o expiró.
type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
