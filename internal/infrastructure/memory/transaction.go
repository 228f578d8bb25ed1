package memory

import (
	"context"
	"errors"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

var (
	ErrTxDone     = errors.New("トランザクションは既に終了しています")
	ErrTxRequired = errors.New("このストアの有効なトランザクションが必要です")
)

// Tx は Store の書き込みロックを保持するトランザクション
// 変更は ops に積まれ、Commit 時にロックを保持したまま一括で反映される
type Tx struct {
	store *Store
	ops   []func()
	done  bool

	// 同一トランザクション内で保留中の変更
	pendingTickets int
	pendingSeats   map[int]map[seat.Position]struct{}
}

// Commit は保留中の変更をすべて反映してロックを解放する
func (t *Tx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	for _, op := range t.ops {
		op()
	}
	t.finish()
	return nil
}

// Rollback は保留中の変更を破棄してロックを解放する
func (t *Tx) Rollback() error {
	if t.done {
		return ErrTxDone
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.done = true
	t.ops = nil
	t.store.mu.Unlock()
}

func (t *Tx) stage(op func()) {
	t.ops = append(t.ops, op)
}

func (t *Tx) seatPending(playID int, pos seat.Position) bool {
	_, ok := t.pendingSeats[playID][pos]
	return ok
}

func (t *Tx) markSeatPending(playID int, pos seat.Position) {
	if t.pendingSeats == nil {
		t.pendingSeats = make(map[int]map[seat.Position]struct{})
	}
	set, ok := t.pendingSeats[playID]
	if !ok {
		set = make(map[seat.Position]struct{})
		t.pendingSeats[playID] = set
	}
	set[pos] = struct{}{}
}

// TxManager は Store 用のトランザクションマネージャー
type TxManager struct {
	store *Store
}

// NewTxManager は新しい TxManager を作成する
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin は書き込みロックを取得してトランザクションを開始する
func (m *TxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.store.mu.Lock()
	return &Tx{store: m.store}, nil
}

// unwrapTx は transaction.Tx から、このストアの有効な *Tx を取り出す
func unwrapTx(store *Store, tx transaction.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t == nil || t.store != store || t.done {
		return nil, ErrTxRequired
	}
	return t, nil
}

var _ transaction.Manager = (*TxManager)(nil)
