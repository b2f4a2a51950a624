package redis

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "limite:"

var _ fiber.Storage = (*Storage)(nil)

// Storage implementa fiber.Storage para que el limiter de fiber comparta contadores
// entre instancias de la API.
type Storage struct {
	rdb     *goredis.Client
	timeout time.Duration
}

// NewStorage construye el storage; no cierra el cliente en Close (lo cierra main).
func NewStorage(rdb *goredis.Client) *Storage {
	return &Storage{rdb: rdb, timeout: 2 * time.Second}
}

func (s *Storage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get devuelve (nil, nil) si la clave no existe, como espera fiber.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.rdb.Get(ctx, limiterKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Set(ctx, limiterKeyPrefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Del(ctx, limiterKeyPrefix+key).Err()
}

// Reset borra solo las claves del limiter, nunca las sesiones.
func (s *Storage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	iter := s.rdb.Scan(ctx, 0, limiterKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error { return nil }
