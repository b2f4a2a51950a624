package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second

	maxAttempts       = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// ContactConsumer escucha contacto.recibido y pasa cada evento al notificador.
type ContactConsumer struct {
	url        string
	notifier   ports.ContactNotifier
	retryDelay time.Duration
}

// NewContactConsumer construye el consumidor.
func NewContactConsumer(url string, notifier ports.ContactNotifier) *ContactConsumer {
	return &ContactConsumer{url: url, notifier: notifier, retryDelay: defaultRetryDelay}
}

// Run consume hasta que ctx se cancele. Si la conexión cae, reintenta con espera exponencial.
func (c *ContactConsumer) Run(ctx context.Context) error {
	backoff := initialBackoff
	for {
		conn, err := dial(ctx, c.url)
		if err != nil {
			log.Warn().Err(err).Dur("reintento", backoff).Msg("contacto-consumer: no se pudo conectar")
			if !sleepCtx(ctx, backoff) {
				return ctx.Err()
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Msg("contacto-consumer: consumo interrumpido; reconectando")
		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *ContactConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("abrir canal: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Warn().Err(err).Msg("contacto-consumer: no se pudo fijar QoS")
	}
	if err := declareTopology(ch, ports.QueueContactReceived); err != nil {
		return err
	}
	msgs, err := ch.Consume(ports.QueueContactReceived, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consumir cola: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de entregas cerrado")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				log.Error().Err(err).
					Str("cola_fallidos", deadLetterQueue(ports.QueueContactReceived)).
					Msg("contacto-consumer: mensaje rechazado")
				_ = d.Nack(false, false) // va a la cola de fallidos
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *ContactConsumer) handle(ctx context.Context, body []byte) error {
	var ev ports.ContactReceivedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("evento inválido: %w", err)
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = c.notifier.NotifyContact(ctx, ev); err == nil {
			break
		}
		log.Warn().Err(err).Int("intento", attempt).Int64("id_contacto", ev.ContactID).
			Msg("contacto-consumer: aviso fallido")
		if attempt < maxAttempts && !sleepCtx(ctx, c.retryDelay) {
			return ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("aviso tras %d intentos: %w", maxAttempts, err)
	}
	log.Info().Int64("id_contacto", ev.ContactID).Msg("contacto-consumer: aviso enviado")
	return nil
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// sleepCtx devuelve false si ctx se canceló antes de terminar la espera.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
