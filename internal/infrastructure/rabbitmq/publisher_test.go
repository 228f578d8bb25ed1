package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

var purchasedAt = time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)

func newSoldTicket() *ticket.Ticket {
	return ticket.NewTicket(ticket.NewTicketInput{
		ID: 7, PlayID: 1, PlayTitle: "Гамлет", Row: 5, Seat: 10,
		Price: decimal.NewFromInt(1500), UserEmail: "user@example.com",
		PurchasedAt: purchasedAt, QRBaseURL: "https://api.theater.example.com/tickets",
	})
}

func TestNewTicketSoldEvent(t *testing.T) {
	ev := NewTicketSoldEvent(newSoldTicket())

	assert.Equal(t, 7, ev.TicketID)
	assert.Equal(t, 1, ev.PlayID)
	assert.Equal(t, "Гамлет", ev.PlayTitle)
	assert.Equal(t, 5, ev.Row)
	assert.Equal(t, 10, ev.Seat)
	assert.Equal(t, "1500.00", ev.Price)
	assert.Equal(t, "user@example.com", ev.UserEmail)
	assert.True(t, purchasedAt.Equal(ev.PurchasedAt))
}

func TestPublisher_PublishTicketSold(t *testing.T) {
	ch := &fakeChannel{}
	now := time.Date(2024, 3, 10, 12, 30, 1, 0, time.UTC)
	p := newPublisherWithChannel(ch, DefaultQueue, func() time.Time { return now })

	require.NoError(t, p.PublishTicketSold(context.Background(), newSoldTicket()))

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"tickets.sold"}, ch.keys)

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "ticket-7", msg.MessageId)
	assert.Equal(t, now, msg.Timestamp)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, float64(7), body["ticketId"])
	assert.Equal(t, "1500.00", body["price"])
	assert.Equal(t, "2024-03-10T12:30:00Z", body["purchaseDate"])
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := newPublisherWithChannel(ch, DefaultQueue, time.Now)

	err := p.PublishTicketSold(context.Background(), newSoldTicket())
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisherWithChannel(ch, DefaultQueue, time.Now)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNewPublisher_LiveBroker(t *testing.T) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		t.Skip("AMQP_URL が未設定のためスキップ")
	}

	p, err := NewPublisher(url, "tickets.sold.test")
	require.NoError(t, err)
	defer p.Close()

	assert.NoError(t, p.PublishTicketSold(context.Background(), newSoldTicket()))
}
