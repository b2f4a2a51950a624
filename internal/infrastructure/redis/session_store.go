package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
)

const sessionKeyPrefix = "sesion:"

var _ auth.SessionStore = (*SessionStore)(nil)

// SessionStore guarda cada sesión como JSON bajo "sesion:<id>" con TTL de Redis.
type SessionStore struct {
	rdb goredis.Cmdable
}

// NewSessionStore construye el store sobre un cliente ya conectado.
func NewSessionStore(rdb goredis.Cmdable) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func (s *SessionStore) Save(ctx context.Context, sess *auth.Session, ttl time.Duration) error {
	body, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis: serializar sesión: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), body, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}

// Get devuelve (nil, nil) cuando la clave no existe: sesión cerrada o expirada.
func (s *SessionStore) Get(ctx context.Context, id string) (*auth.Session, error) {
	body, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis: leer sesión: %w", err)
	}
	var sess auth.Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("redis: sesión corrupta: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: borrar sesión: %w", err)
	}
	return nil
}
