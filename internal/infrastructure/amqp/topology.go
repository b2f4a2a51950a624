package amqp

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
)

const (
	dialTimeout = 3 * time.Second
	heartbeat   = 10 * time.Second
)

// queues que la API publica; cada una tiene su cola de fallidos.
var queues = []string{ports.QueueSaleCreated, ports.QueueContactReceived}

// deadLetterQueue recibe los mensajes rechazados de q.
func deadLetterQueue(q string) string {
	return q + ".fallidos"
}

// queueArgs enruta los rechazos de q a su cola de fallidos por el exchange por defecto.
func queueArgs(q string) amqp.Table {
	return amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": deadLetterQueue(q),
	}
}

// declareTopology declara las colas durables y sus colas de fallidos.
func declareTopology(ch *amqp.Channel, names ...string) error {
	for _, q := range names {
		if _, err := ch.QueueDeclare(deadLetterQueue(q), true, false, false, false, nil); err != nil {
			return fmt.Errorf("rabbitmq: declarar cola %s: %w", deadLetterQueue(q), err)
		}
		if _, err := ch.QueueDeclare(q, true, false, false, false, queueArgs(q)); err != nil {
			return fmt.Errorf("rabbitmq: declarar cola %s: %w", q, err)
		}
	}
	return nil
}

// dial conecta sin exceder el deadline de ctx ni dialTimeout, incluido el handshake AMQP.
func dial(ctx context.Context, url string) (*amqp.Connection, error) {
	timeout := dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("rabbitmq: dial: %w", context.DeadlineExceeded)
	}
	conn, err := amqp.DialConfig(url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: heartbeat,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	return conn, nil
}
