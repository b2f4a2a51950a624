package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// ContactUseCase buzón de contacto: envío público y gestión de estado por el admin.
type ContactUseCase struct {
	repo   repository.ContactRepository
	events ports.EventPublisher
}

// NewContactUseCase construye el caso de uso. events puede ser nil.
func NewContactUseCase(repo repository.ContactRepository, events ports.EventPublisher) *ContactUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &ContactUseCase{repo: repo, events: events}
}

// Submit guarda un mensaje en estado pendiente y publica contacto.recibido.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest) (*dto.ContactCreatedResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Mensaje)
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: Nombre, email y mensaje son requeridos", domain.ErrInvalidInput)
	}
	msg := &entity.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Telefono),
		Message: message,
		Status:  entity.ContactStatusPending,
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	ev := ports.ContactReceivedEvent{
		ContactID: msg.ID, Name: msg.Name, Email: msg.Email,
		Phone: msg.Phone, Message: msg.Message, Date: msg.Date,
	}
	if err := uc.events.PublishContactReceived(ctx, ev); err != nil {
		log.Warn().Err(err).Int64("id_contacto", msg.ID).Msg("contacto: no se pudo publicar contacto.recibido")
	}

	return &dto.ContactCreatedResponse{
		Success:    true,
		Message:    "¡Mensaje enviado exitosamente! Te contactaremos pronto.",
		IDContacto: msg.ID,
	}, nil
}

// List mensajes más recientes primero.
func (uc *ContactUseCase) List(ctx context.Context) (*dto.ContactListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toContactResponse(m))
	}
	return &dto.ContactListResponse{Success: true, Contactos: out}, nil
}

func (uc *ContactUseCase) GetByID(ctx context.Context, id int64) (*dto.ContactItemResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: Mensaje no encontrado", domain.ErrNotFound)
	}
	return &dto.ContactItemResponse{Success: true, Contacto: toContactResponse(m)}, nil
}

// UpdateStatus cambia el estado a cualquiera de pendiente, leido o resuelto.
// Otro valor: domain.ErrInvalidInput sin tocar la BD.
func (uc *ContactUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.MessageResponse, error) {
	if !entity.ValidContactStatus(status) {
		return nil, fmt.Errorf("%w: Estado inválido", domain.ErrInvalidInput)
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return ok("Estado actualizado exitosamente"), nil
}

func toContactResponse(m *entity.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		IDContacto: m.ID,
		Nombre:     m.Name,
		Email:      m.Email,
		Telefono:   m.Phone,
		Mensaje:    m.Message,
		Fecha:      m.Date,
		Estado:     m.Status,
	}
}
