// Package payment は決済判定の実装を提供する
package payment

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "github.com/sanosuguru/go-theater-ticket-booking/internal/domain/payment"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
)

// DefaultDeclineRate はカード決済が拒否される既定の確率
const DefaultDeclineRate = 0.1

// SimulatedGateway は確率的にカード決済を拒否する決済スタブ
// カード以外の支払い方法は常に承認する
type SimulatedGateway struct {
	declineRate float64
	draw        func() float64
}

// NewSimulatedGateway は新しい SimulatedGateway を作成する
func NewSimulatedGateway(declineRate float64) *SimulatedGateway {
	return &SimulatedGateway{declineRate: clampRate(declineRate), draw: rand.Float64}
}

// NewSimulatedGatewayWithSource は乱数源を指定して作成する（テスト用）
func NewSimulatedGatewayWithSource(declineRate float64, draw func() float64) *SimulatedGateway {
	return &SimulatedGateway{declineRate: clampRate(declineRate), draw: draw}
}

// Authorize は支払いを判定する
func (g *SimulatedGateway) Authorize(ctx context.Context, method domain.Method, amount decimal.Decimal) error {
	if method != domain.MethodCard {
		return nil
	}
	if g.draw() < g.declineRate {
		logger.Debug("カード決済を拒否しました（シミュレーション）",
			zap.String("amount", amount.StringFixed(2)),
		)
		return domain.ErrPaymentDeclined
	}
	return nil
}

func clampRate(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

var _ domain.Authorizer = (*SimulatedGateway)(nil)
