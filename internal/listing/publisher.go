package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EventPlanner/internal/domain"
)

const routingKeyPrefix = "event."

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message is the body the public listing pipeline consumes.
type Message struct {
	EventID   string          `json:"event_id"`
	Decision  domain.Decision `json:"decision"`
	Title     string          `json:"title"`
	VenueID   string          `json:"venue_id"`
	VenueName string          `json:"venue_name,omitempty"`
	AreaIDs   []string        `json:"area_ids"`
	StartAt   time.Time       `json:"start_at"`
	EndAt     time.Time       `json:"end_at"`
	DecidedAt *time.Time      `json:"decided_at,omitempty"`
}

// Publisher sends decided events to a topic exchange with routing keys
// event.approved and event.rejected.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func RoutingKey(d domain.Decision) string {
	return routingKeyPrefix + string(d)
}

func (p *Publisher) PublishDecision(ctx context.Context, event *domain.Event, decision domain.Decision) error {
	msg := Message{
		EventID:   event.ID,
		Decision:  decision,
		Title:     event.Title,
		VenueID:   event.VenueID,
		AreaIDs:   event.AreaIDs,
		StartAt:   event.StartAt,
		EndAt:     event.EndAt,
		DecidedAt: event.DecidedAt,
	}
	if event.Venue != nil {
		msg.VenueName = event.Venue.Name
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode listing message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(decision), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID + ":" + string(decision),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKey(decision), err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
