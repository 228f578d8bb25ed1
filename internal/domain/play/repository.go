package play

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// Repository は公演リポジトリのインターフェース
type Repository interface {
	// List は条件に合う公演をシード順で取得する
	List(ctx context.Context, filter Filter) ([]*Play, error)

	// GetByID はIDから公演を取得する（トランザクション必須）
	GetByID(ctx context.Context, tx transaction.Tx, id int) (*Play, error)

	// UpdateAvailableSeats は空席数を更新する（トランザクション必須、コミット時に反映）
	UpdateAvailableSeats(ctx context.Context, tx transaction.Tx, id int, count int) error
}
