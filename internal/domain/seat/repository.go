package seat

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/transaction"
)

// Ledger は公演ごとの使用済み座席を管理する台帳のインターフェース
type Ledger interface {
	// IsAvailable は座席が空いているかを返す（トランザクション必須）
	// 未知の公演IDは空の集合として扱う
	IsAvailable(ctx context.Context, tx transaction.Tx, playID int, pos Position) (bool, error)

	// Occupy は座席を使用済みにする（トランザクション必須、コミット時に反映）
	// 直前に同じトランザクション内で IsAvailable を確認しておくこと
	Occupy(ctx context.Context, tx transaction.Tx, playID int, pos Position) error
}
