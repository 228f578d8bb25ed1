package transaction

import "context"

// Tx は予約処理の単位を表すインターフェース
// 公演の空席数・座席台帳・チケット列への変更はコミット時にまとめて反映され、
// ロールバック時には何も反映されない
type Tx interface {
	// Commit は保留中の変更をすべて反映する
	Commit() error
	// Rollback は保留中の変更を破棄する
	Rollback() error
}

// Manager はトランザクションを管理するインターフェース
type Manager interface {
	// Begin は新しいトランザクションを開始する
	// 終了（Commit/Rollback）するまで他のトランザクションは待たされる
	Begin(ctx context.Context) (Tx, error)
}
