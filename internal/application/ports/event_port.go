// Package ports define puertos de salida compartidos por varios casos de uso.
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Nombres de cola de los eventos de dominio.
const (
	QueueSaleCreated     = "venta.creada"
	QueueContactReceived = "contacto.recibido"
)

// SaleCreatedEvent se publica tras confirmar una venta.
type SaleCreatedEvent struct {
	SaleID      int64           `json:"id_venta"`
	InvoiceCode string          `json:"factura"`
	UserID      *int64          `json:"usuario_id"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"fecha"`
}

// ContactReceivedEvent se publica cuando llega un mensaje de contacto.
type ContactReceivedEvent struct {
	ContactID int64     `json:"id_contacto"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Message   string    `json:"mensaje"`
	Date      time.Time `json:"fecha"`
}

// EventPublisher publica eventos de dominio. Los llamadores tratan los errores como no fatales.
type EventPublisher interface {
	PublishSaleCreated(ctx context.Context, ev SaleCreatedEvent) error
	PublishContactReceived(ctx context.Context, ev ContactReceivedEvent) error
}

// NopPublisher descarta los eventos (mensajería desactivada).
type NopPublisher struct{}

func (NopPublisher) PublishSaleCreated(context.Context, SaleCreatedEvent) error         { return nil }
func (NopPublisher) PublishContactReceived(context.Context, ContactReceivedEvent) error { return nil }

// ContactNotifier avisa al administrador de un mensaje de contacto nuevo.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, ev ContactReceivedEvent) error
}
