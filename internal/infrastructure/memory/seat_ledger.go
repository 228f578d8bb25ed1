package memory

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// SeatLedger は座席台帳のメモリ実装
type SeatLedger struct {
	store *Store
}

// NewSeatLedger は SeatLedger を作成する
func NewSeatLedger(store *Store) *SeatLedger {
	return &SeatLedger{store: store}
}

// IsAvailable は座席が空いているかを返す
func (l *SeatLedger) IsAvailable(ctx context.Context, tx transaction.Tx, playID int, pos seat.Position) (bool, error) {
	t, err := unwrapTx(l.store, tx)
	if err != nil {
		return false, err
	}
	return !l.store.isOccupied(playID, pos) && !t.seatPending(playID, pos), nil
}

// Occupy は座席の使用をトランザクションに積む
func (l *SeatLedger) Occupy(ctx context.Context, tx transaction.Tx, playID int, pos seat.Position) error {
	t, err := unwrapTx(l.store, tx)
	if err != nil {
		return err
	}
	if l.store.isOccupied(playID, pos) || t.seatPending(playID, pos) {
		return seat.ErrSeatTaken
	}
	t.markSeatPending(playID, pos)
	t.stage(func() {
		l.store.occupy(playID, pos)
	})
	return nil
}

var _ seat.Ledger = (*SeatLedger)(nil)
