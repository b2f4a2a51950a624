package entity

import "time"

// Estados del flujo de mensajes de contacto.
const (
	ContactStatusPending  = "pendiente"
	ContactStatusRead     = "leido"
	ContactStatusResolved = "resuelto"
)

// ContactMessage mensaje enviado desde el formulario público (tabla contacto).
type ContactMessage struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Message string
	Date    time.Time
	Status  string
}

// ValidContactStatus indica si el estado pertenece al conjunto permitido.
// No hay orden forzado entre estados.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusPending, ContactStatusRead, ContactStatusResolved:
		return true
	}
	return false
}
