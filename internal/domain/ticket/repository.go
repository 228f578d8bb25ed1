package ticket

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// Repository はチケットリポジトリのインターフェース（追記のみ）
type Repository interface {
	// NextID は次に発行するチケットIDを返す（トランザクション必須）
	NextID(ctx context.Context, tx transaction.Tx) (int, error)

	// Append はチケットを追加する（トランザクション必須、コミット時に反映）
	Append(ctx context.Context, tx transaction.Tx, t *Ticket) error

	// GetByID はIDからチケットを取得する
	GetByID(ctx context.Context, id int) (*Ticket, error)
}
