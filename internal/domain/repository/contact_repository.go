package repository

import (
	"context"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para ContactMessage.
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*entity.ContactMessage, error)
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	// UpdateStatus devuelve domain.ErrNotFound si el mensaje no existe.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
