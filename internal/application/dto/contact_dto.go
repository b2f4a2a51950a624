package dto

import "time"

// ContactRequest entrada pública de POST /contacto.
type ContactRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Mensaje  string `json:"mensaje" validate:"required,max=2000"`
}

// ContactCreatedResponse salida del envío de contacto.
type ContactCreatedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	IDContacto int64  `json:"id_contacto"`
}

// ContactStatusRequest entrada de PUT /admin/contacto/:id/estado.
// El conjunto permitido se valida en el caso de uso para responder con su mensaje.
type ContactStatusRequest struct {
	Estado string `json:"estado"`
}

// ContactResponse mensaje de contacto para el admin.
type ContactResponse struct {
	IDContacto int64     `json:"id_contacto"`
	Nombre     string    `json:"nombre"`
	Email      string    `json:"email"`
	Telefono   string    `json:"telefono"`
	Mensaje    string    `json:"mensaje"`
	Fecha      time.Time `json:"fecha"`
	Estado     string    `json:"estado"`
}

// ContactListResponse salida de GET /admin/contactos.
type ContactListResponse struct {
	Success   bool              `json:"success"`
	Contactos []ContactResponse `json:"contactos"`
}

// ContactItemResponse un mensaje.
type ContactItemResponse struct {
	Success  bool            `json:"success"`
	Contacto ContactResponse `json:"contacto"`
}
