// Package amqp publica y consume los eventos de dominio en RabbitMQ.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// reconnectCooldown evita redialar en cada publicación mientras el broker está caído.
const reconnectCooldown = 5 * time.Second

var errBrokerDown = errors.New("rabbitmq: sin conexión, reintento pendiente")

// Publisher mantiene una conexión y un canal compartidos. El canal de amqp091 no es
// seguro para uso concurrente, por eso cada publicación toma el mutex.
type Publisher struct {
	url      string
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	lastFail time.Time
}

// NewPublisher conecta y declara las colas.
func NewPublisher(url string) (*Publisher, error) {
	p := &Publisher{url: url}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connectLocked(ctx context.Context) error {
	conn, err := dial(ctx, p.url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq: abrir canal: %w", err)
	}
	if err := declareTopology(ch, queues...); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *Publisher) PublishSaleCreated(ctx context.Context, ev ports.SaleCreatedEvent) error {
	return p.publish(ctx, ports.QueueSaleCreated, ev)
}

func (p *Publisher) PublishContactReceived(ctx context.Context, ev ports.ContactReceivedEvent) error {
	return p.publish(ctx, ports.QueueContactReceived, ev)
}

// publish serializa ev como JSON persistente en la cola indicada. Si el canal se cerró
// (broker reiniciado) reconecta una vez antes de fallar; tras un fallo no vuelve a
// intentar hasta que pase reconnectCooldown.
func (p *Publisher) publish(ctx context.Context, queue string, ev any) error {
	msg, err := newMessage(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if !p.lastFail.IsZero() && time.Since(p.lastFail) < reconnectCooldown {
			return errBrokerDown
		}
		if err := p.connectLocked(ctx); err != nil {
			p.lastFail = time.Now()
			return err
		}
		p.lastFail = time.Time{}
		log.Info().Str("cola", queue).Msg("rabbitmq: reconectado")
	}
	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq: publicar en %s: %w", queue, err)
	}
	return nil
}

func newMessage(ev any) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("rabbitmq: serializar evento: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
