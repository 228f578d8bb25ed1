// Package payment は決済判定のインターフェースを定義する
package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
)

// Method は支払い方法を表す
type Method string

const (
	MethodCard        Method = "card"
	MethodCash        Method = "cash"
	MethodCertificate Method = "certificate"
)

// DefaultMethod はリクエストで省略されたときの支払い方法
const DefaultMethod = MethodCard

var (
	ErrPaymentDeclined = apperr.New(apperr.KindPayment, "PAYMENT_DECLINED", "Недостаточно средств на карте")
)

// Authorizer は支払いを承認するかを判定する
// 拒否する場合は ErrPaymentDeclined を返す
type Authorizer interface {
	Authorize(ctx context.Context, method Method, amount decimal.Decimal) error
}

// AuthorizerFunc は関数を Authorizer として扱うためのアダプター
type AuthorizerFunc func(ctx context.Context, method Method, amount decimal.Decimal) error

func (f AuthorizerFunc) Authorize(ctx context.Context, method Method, amount decimal.Decimal) error {
	return f(ctx, method, amount)
}
