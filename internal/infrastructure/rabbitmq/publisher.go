// Package rabbitmq はチケット販売イベントをRabbitMQへ配信する
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
)

// DefaultQueue は販売イベントの既定キュー名
const DefaultQueue = "tickets.sold"

// TicketSoldEvent はチケット販売時に配信するメッセージ
type TicketSoldEvent struct {
	TicketID    int       `json:"ticketId"`
	PlayID      int       `json:"playId"`
	PlayTitle   string    `json:"playTitle"`
	Row         int       `json:"row"`
	Seat        int       `json:"seat"`
	Price       string    `json:"price"`
	UserEmail   string    `json:"userEmail"`
	PurchasedAt time.Time `json:"purchaseDate"`
}

// NewTicketSoldEvent はチケットから配信メッセージを組み立てる
func NewTicketSoldEvent(t *ticket.Ticket) TicketSoldEvent {
	return TicketSoldEvent{
		TicketID:    t.ID,
		PlayID:      t.PlayID,
		PlayTitle:   t.PlayTitle,
		Row:         t.Row,
		Seat:        t.Seat,
		Price:       t.Price.StringFixed(2),
		UserEmail:   t.UserEmail,
		PurchasedAt: t.PurchasedAt,
	}
}

// channel は Publisher が使う amqp.Channel の操作
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher は販売イベントを永続キューに配信する
type Publisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    channel
	queue string
	now   func() time.Time
}

// NewPublisher はブローカーに接続し、キューを宣言する
func NewPublisher(url, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("RabbitMQへの接続に失敗しました: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("チャネルの作成に失敗しました: %w", err)
	}
	// durable: ブローカー再起動後もキューを残す
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("キューの宣言に失敗しました: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, queue: queue, now: time.Now}, nil
}

func newPublisherWithChannel(ch channel, queue string, now func() time.Time) *Publisher {
	return &Publisher{ch: ch, queue: queue, now: now}
}

// PublishTicketSold はチケット販売イベントを配信する
func (p *Publisher) PublishTicketSold(ctx context.Context, t *ticket.Ticket) error {
	body, err := json.Marshal(NewTicketSoldEvent(t))
	if err != nil {
		return fmt.Errorf("イベントのシリアライズに失敗しました: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("ticket-%d", t.ID),
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("イベントの配信に失敗しました: %w", err)
	}
	logger.Debug("販売イベントを配信しました",
		zap.Int("ticket_id", t.ID),
		zap.String("queue", p.queue),
	)
	return nil
}

// Close はチャネルと接続を閉じる
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
