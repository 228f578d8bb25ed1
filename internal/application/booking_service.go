package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/clock"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/payment"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/metrics"
)

// SeatCountMirror は空席数を外部に写す先（Redis など）
type SeatCountMirror interface {
	SetAvailableCount(ctx context.Context, playID, count int) error
	SetAvailableCounts(ctx context.Context, counts map[int]int) error
}

// TicketEventPublisher はチケット販売イベントの配信先（RabbitMQ など）
type TicketEventPublisher interface {
	PublishTicketSold(ctx context.Context, t *ticket.Ticket) error
}

type BookingConfig struct {
	Prices          ticket.PriceTable
	QRBaseURL       string
	SeatCountPolicy play.SeatCountPolicy
}

// DefaultBookingConfig は既定の料金表・QR URL・clamp ポリシーを返す
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		Prices:          ticket.DefaultPriceTable(),
		QRBaseURL:       "https://api.theater.example.com/tickets",
		SeatCountPolicy: play.SeatCountClamp,
	}
}

type BookingService struct {
	txManager  transaction.Manager
	playRepo   play.Repository
	ledger     seat.Ledger
	ticketRepo ticket.Repository
	authorizer payment.Authorizer
	clock      clock.Clock
	cfg        BookingConfig

	metrics   *metrics.Metrics
	mirror    SeatCountMirror
	publisher TicketEventPublisher
}

// BookingOption は BookingService の任意の連携先を設定する
type BookingOption func(*BookingService)

func WithMetrics(m *metrics.Metrics) BookingOption {
	return func(s *BookingService) { s.metrics = m }
}

func WithSeatCountMirror(m SeatCountMirror) BookingOption {
	return func(s *BookingService) { s.mirror = m }
}

func WithEventPublisher(p TicketEventPublisher) BookingOption {
	return func(s *BookingService) { s.publisher = p }
}

func NewBookingService(
	tm transaction.Manager,
	pr play.Repository,
	ledger seat.Ledger,
	tr ticket.Repository,
	authorizer payment.Authorizer,
	clk clock.Clock,
	cfg BookingConfig,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		txManager:  tm,
		playRepo:   pr,
		ledger:     ledger,
		ticketRepo: tr,
		authorizer: authorizer,
		clock:      clk,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PurchaseTicketInput は購入リクエスト
// nil のフィールドはリクエストに含まれていなかったことを表す
type PurchaseTicketInput struct {
	PlayID        *int    `json:"playId" validate:"required"`
	Row           *int    `json:"row" validate:"required"`
	Seat          *int    `json:"seat" validate:"required"`
	UserEmail     *string `json:"userEmail" validate:"required"`
	PaymentMethod *string `json:"paymentMethod"`
}

func (in PurchaseTicketInput) paymentMethod() payment.Method {
	if in.PaymentMethod == nil {
		return payment.DefaultMethod
	}
	return payment.Method(*in.PaymentMethod)
}

// PurchaseTicket は座席を1つ購入してチケットを発行する
// 空席確認から台帳・空席数・チケット列の更新までは1つのトランザクションで行う
func (s *BookingService) PurchaseTicket(ctx context.Context, input PurchaseTicketInput) (*ticket.Ticket, error) {
	t, remaining, err := s.purchase(ctx, input)
	s.recordPurchase(err)
	if err != nil {
		return nil, err
	}

	s.afterSale(ctx, t, remaining)
	return t, nil
}

func (s *BookingService) purchase(ctx context.Context, input PurchaseTicketInput) (*ticket.Ticket, int, error) {
	if err := validatePurchase(input); err != nil {
		return nil, 0, err
	}
	playID := *input.PlayID
	pos := seat.NewPosition(*input.Row, *input.Seat)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	p, err := s.playRepo.GetByID(ctx, tx, playID)
	if err != nil {
		if errors.Is(err, play.ErrPlayNotFound) {
			return nil, 0, play.ErrPlayNotFound.WithMessage(fmt.Sprintf("Спектакль с ID %d не найден", playID))
		}
		return nil, 0, fmt.Errorf("公演取得に失敗: %w", err)
	}

	available, err := s.ledger.IsAvailable(ctx, tx, playID, pos)
	if err != nil {
		return nil, 0, fmt.Errorf("空席確認に失敗: %w", err)
	}
	if !available {
		return nil, 0, seat.ErrSeatTaken
	}

	price := s.cfg.Prices.PriceFor(p.Hall)
	if err := s.authorizer.Authorize(ctx, input.paymentMethod(), price); err != nil {
		if errors.Is(err, payment.ErrPaymentDeclined) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("決済判定に失敗: %w", err)
	}

	id, err := s.ticketRepo.NextID(ctx, tx)
	if err != nil {
		return nil, 0, fmt.Errorf("チケット採番に失敗: %w", err)
	}
	t := ticket.NewTicket(ticket.NewTicketInput{
		ID:          id,
		PlayID:      p.ID,
		PlayTitle:   p.Title,
		Row:         pos.Row,
		Seat:        pos.Number,
		Price:       price,
		UserEmail:   *input.UserEmail,
		PurchasedAt: s.clock.Now(),
		QRBaseURL:   s.cfg.QRBaseURL,
	})

	remaining := p.RemainingAfterSale(s.cfg.SeatCountPolicy)
	if err := s.ticketRepo.Append(ctx, tx, t); err != nil {
		return nil, 0, fmt.Errorf("チケット保存に失敗: %w", err)
	}
	if err := s.ledger.Occupy(ctx, tx, playID, pos); err != nil {
		if errors.Is(err, seat.ErrSeatTaken) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("座席確保に失敗: %w", err)
	}
	if err := s.playRepo.UpdateAvailableSeats(ctx, tx, playID, remaining); err != nil {
		return nil, 0, fmt.Errorf("空席数更新に失敗: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("コミットに失敗: %w", err)
	}
	return t, remaining, nil
}

// afterSale はコミット後の通知を行う。失敗しても購入は成功扱い
func (s *BookingService) afterSale(ctx context.Context, t *ticket.Ticket, remaining int) {
	if s.metrics != nil {
		s.metrics.AvailableSeats.WithLabelValues(strconv.Itoa(t.PlayID)).Set(float64(remaining))
	}
	if s.mirror != nil {
		if err := s.mirror.SetAvailableCount(ctx, t.PlayID, remaining); err != nil {
			logger.Warn("空席数キャッシュの更新に失敗しました",
				zap.Int("play_id", t.PlayID),
				zap.Error(err),
			)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishTicketSold(ctx, t); err != nil {
			logger.Warn("販売イベントの配信に失敗しました",
				zap.Int("ticket_id", t.ID),
				zap.Error(err),
			)
		}
	}
	logger.Info("チケットを販売しました",
		zap.Int("ticket_id", t.ID),
		zap.Int("play_id", t.PlayID),
		zap.Int("row", t.Row),
		zap.Int("seat", t.Seat),
	)
}

func (s *BookingService) recordPurchase(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.TicketPurchasesTotal.WithLabelValues(purchaseResult(err)).Inc()
}

func purchaseResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSold
	case errors.Is(err, seat.ErrSeatTaken):
		return metrics.ResultSeatTaken
	}
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return metrics.ResultValidationError
	case apperr.KindNotFound:
		return metrics.ResultNotFound
	case apperr.KindPayment:
		return metrics.ResultDeclined
	default:
		return metrics.ResultError
	}
}

// GetTicket はIDからチケットを取得する
func (s *BookingService) GetTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	t, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return nil, ticket.ErrTicketNotFound.WithMessage(fmt.Sprintf("Билет с ID %d не найден", id))
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return t, nil
}
