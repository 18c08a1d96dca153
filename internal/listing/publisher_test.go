package listing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	out    []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_PublishDecision(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "listings"}

	decidedAt := time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{
		ID:        "e1",
		Title:     "Tap Takeover",
		VenueID:   "v1",
		Venue:     &domain.VenueRef{ID: "v1", Name: "Main Hall"},
		AreaIDs:   []string{"a1"},
		StartAt:   time.Date(2026, 11, 6, 19, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2026, 11, 6, 21, 0, 0, 0, time.UTC),
		DecidedAt: &decidedAt,
	}

	require.NoError(t, p.PublishDecision(context.Background(), event, domain.DecisionApproved))

	require.Len(t, ch.out, 1)
	assert.Equal(t, "listings", ch.out[0].exchange)
	assert.Equal(t, "event.approved", ch.out[0].key)
	assert.Equal(t, "application/json", ch.out[0].msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.out[0].msg.DeliveryMode)

	var body Message
	require.NoError(t, json.Unmarshal(ch.out[0].msg.Body, &body))
	assert.Equal(t, "e1", body.EventID)
	assert.Equal(t, "Main Hall", body.VenueName)
	assert.Equal(t, domain.DecisionApproved, body.Decision)
}

func TestPublisher_PublishDecision_Error(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{ch: ch, exchange: "listings"}

	err := p.PublishDecision(context.Background(), &domain.Event{ID: "e1"}, domain.DecisionRejected)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "event.rejected")
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch}

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
