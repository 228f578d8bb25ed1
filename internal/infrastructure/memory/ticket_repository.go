package memory

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// TicketRepository はチケットリポジトリのメモリ実装（追記のみ）
type TicketRepository struct {
	store *Store
}

// NewTicketRepository は TicketRepository を作成する
func NewTicketRepository(store *Store) *TicketRepository {
	return &TicketRepository{store: store}
}

// NextID は「件数 + 1」を返す。ロック下で呼ばれるため重複しない
func (r *TicketRepository) NextID(ctx context.Context, tx transaction.Tx) (int, error) {
	t, err := unwrapTx(r.store, tx)
	if err != nil {
		return 0, err
	}
	return len(r.store.tickets) + t.pendingTickets + 1, nil
}

// Append はチケットの追加をトランザクションに積む
func (r *TicketRepository) Append(ctx context.Context, tx transaction.Tx, tk *ticket.Ticket) error {
	t, err := unwrapTx(r.store, tx)
	if err != nil {
		return err
	}
	c := tk.Clone()
	t.pendingTickets++
	t.stage(func() {
		r.store.tickets = append(r.store.tickets, c)
	})
	return nil
}

// GetByID はIDからチケットを取得する
func (r *TicketRepository) GetByID(ctx context.Context, id int) (*ticket.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// IDは 1 始まりの連番なので位置で引ける
	if id >= 1 && id <= len(r.store.tickets) {
		if tk := r.store.tickets[id-1]; tk.ID == id {
			return tk.Clone(), nil
		}
	}
	for _, tk := range r.store.tickets {
		if tk.ID == id {
			return tk.Clone(), nil
		}
	}
	return nil, ticket.ErrTicketNotFound
}

var _ ticket.Repository = (*TicketRepository)(nil)
