package repository

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}
