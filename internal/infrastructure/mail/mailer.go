// Package mail envía los avisos por correo al administrador.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/config"
)

var _ ports.ContactNotifier = (*Mailer)(nil)

type sendFunc func(e *email.Email, addr string, a smtp.Auth) error

// Mailer envía por SMTP un aviso por cada mensaje de contacto recibido.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	to       string
	addr     string
	send     sendFunc
}

// NewMailer construye el mailer desde la configuración SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &Mailer{
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		from:     from,
		to:       cfg.NotifyTo,
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		send:     func(e *email.Email, addr string, a smtp.Auth) error { return e.Send(addr, a) },
	}
}

// NotifyContact avisa al administrador; Reply-To apunta a quien escribió.
func (m *Mailer) NotifyContact(ctx context.Context, ev ports.ContactReceivedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := m.send(m.contactEmail(ev), m.addr, auth); err != nil {
		return fmt.Errorf("mailer: enviar aviso de contacto %d: %w", ev.ContactID, err)
	}
	return nil
}

func (m *Mailer) contactEmail(ev ports.ContactReceivedEvent) *email.Email {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{m.to}
	e.ReplyTo = []string{ev.Email}
	e.Subject = fmt.Sprintf("Nuevo mensaje de contacto #%d de %s", ev.ContactID, ev.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Nombre: %s\n", ev.Name)
	fmt.Fprintf(&b, "Email: %s\n", ev.Email)
	if ev.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", ev.Phone)
	}
	if !ev.Date.IsZero() {
		fmt.Fprintf(&b, "Fecha: %s\n", ev.Date.Format("02/01/2006 15:04"))
	}
	fmt.Fprintf(&b, "\n%s\n", ev.Message)
	e.Text = []byte(b.String())
	return e
}
