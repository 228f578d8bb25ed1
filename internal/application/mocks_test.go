package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// === Mock implementations ===

// MockTxManager implements transaction.Manager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// MockTx implements transaction.Tx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockPlayRepository implements play.Repository
type MockPlayRepository struct {
	mock.Mock
}

func (m *MockPlayRepository) List(ctx context.Context, filter play.Filter) ([]*play.Play, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*play.Play), args.Error(1)
}

func (m *MockPlayRepository) GetByID(ctx context.Context, tx transaction.Tx, id int) (*play.Play, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*play.Play), args.Error(1)
}

func (m *MockPlayRepository) UpdateAvailableSeats(ctx context.Context, tx transaction.Tx, id int, count int) error {
	args := m.Called(ctx, tx, id, count)
	return args.Error(0)
}

// MockSeatLedger implements seat.Ledger
type MockSeatLedger struct {
	mock.Mock
}

func (m *MockSeatLedger) IsAvailable(ctx context.Context, tx transaction.Tx, playID int, pos seat.Position) (bool, error) {
	args := m.Called(ctx, tx, playID, pos)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeatLedger) Occupy(ctx context.Context, tx transaction.Tx, playID int, pos seat.Position) error {
	args := m.Called(ctx, tx, playID, pos)
	return args.Error(0)
}

// MockTicketRepository implements ticket.Repository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) NextID(ctx context.Context, tx transaction.Tx) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepository) Append(ctx context.Context, tx transaction.Tx, t *ticket.Ticket) error {
	args := m.Called(ctx, tx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

// MockSeatCountMirror implements SeatCountMirror
type MockSeatCountMirror struct {
	mock.Mock
}

func (m *MockSeatCountMirror) SetAvailableCount(ctx context.Context, playID, count int) error {
	args := m.Called(ctx, playID, count)
	return args.Error(0)
}

func (m *MockSeatCountMirror) SetAvailableCounts(ctx context.Context, counts map[int]int) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

// MockTicketEventPublisher implements TicketEventPublisher
type MockTicketEventPublisher struct {
	mock.Mock
}

func (m *MockTicketEventPublisher) PublishTicketSold(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
