package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
)

// SeatCountSource は空席数をミラーへ書き直すインターフェース
type SeatCountSource interface {
	SyncSeatCounts(ctx context.Context) (int, error)
}

// SeatCountSyncer は空席数ミラーを定期的に書き直すワーカー
// 販売時の更新に失敗してもここで追いつく
type SeatCountSyncer struct {
	source   SeatCountSource
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// DefaultSyncInterval は間隔が 0 以下のときに使う同期間隔
const DefaultSyncInterval = time.Minute

// NewSeatCountSyncer は新しい同期ワーカーを作成
func NewSeatCountSyncer(source SeatCountSource, interval time.Duration) *SeatCountSyncer {
	if interval <= 0 {
		logger.Warn("同期間隔が不正なため既定値を使います",
			zap.Duration("interval", interval),
			zap.Duration("default", DefaultSyncInterval),
		)
		interval = DefaultSyncInterval
	}
	return &SeatCountSyncer{
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start は同期を開始する。起動直後に1回同期してから定期実行に入る
func (s *SeatCountSyncer) Start(ctx context.Context) {
	logger.Info("空席数同期ワーカー開始", zap.Duration("interval", s.interval))

	defer close(s.doneCh)
	s.sync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("空席数同期ワーカー停止（コンテキストキャンセル）")
			return
		case <-s.stopCh:
			logger.Info("空席数同期ワーカー停止（シグナル受信）")
			return
		case <-ticker.C:
			s.sync(ctx)
		}
	}
}

// Stop は同期を停止し、Start の終了を待つ
func (s *SeatCountSyncer) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

func (s *SeatCountSyncer) sync(ctx context.Context) {
	log := logger.Get()

	count, err := s.source.SyncSeatCounts(ctx)
	if err != nil {
		log.Error("空席数の同期失敗", zap.Error(err))
		return
	}
	log.Debug("空席数を同期", zap.Int("plays", count))
}
