package memory

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// PlayRepository は公演リポジトリのメモリ実装
type PlayRepository struct {
	store *Store
}

// NewPlayRepository は PlayRepository を作成する
func NewPlayRepository(store *Store) *PlayRepository {
	return &PlayRepository{store: store}
}

// List は条件に合う公演のコピーをシード順で返す
func (r *PlayRepository) List(ctx context.Context, filter play.Filter) ([]*play.Play, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plays := make([]*play.Play, 0, len(r.store.plays))
	for _, p := range r.store.plays {
		if filter.Matches(p) {
			plays = append(plays, p.Clone())
		}
	}
	return plays, nil
}

// GetByID はIDから公演を取得する
func (r *PlayRepository) GetByID(ctx context.Context, tx transaction.Tx, id int) (*play.Play, error) {
	if _, err := unwrapTx(r.store, tx); err != nil {
		return nil, err
	}
	p, ok := r.store.playIdx[id]
	if !ok {
		return nil, play.ErrPlayNotFound
	}
	return p.Clone(), nil
}

// UpdateAvailableSeats は空席数の更新をトランザクションに積む
func (r *PlayRepository) UpdateAvailableSeats(ctx context.Context, tx transaction.Tx, id int, count int) error {
	t, err := unwrapTx(r.store, tx)
	if err != nil {
		return err
	}
	p, ok := r.store.playIdx[id]
	if !ok {
		return play.ErrPlayNotFound
	}
	t.stage(func() {
		p.AvailableSeats = count
	})
	return nil
}

// インターフェースを満たしているか確認
var _ play.Repository = (*PlayRepository)(nil)
