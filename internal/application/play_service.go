package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
)

type PlayService struct {
	playRepo play.Repository
	mirror   SeatCountMirror
}

// NewPlayService は PlayService を作成する。mirror は nil でもよい
func NewPlayService(playRepo play.Repository, mirror SeatCountMirror) *PlayService {
	return &PlayService{playRepo: playRepo, mirror: mirror}
}

type ListPlaysInput struct {
	Date  string // YYYY-MM-DD、空なら絞り込まない
	Genre string
}

func (s *PlayService) ListPlays(ctx context.Context, input ListPlaysInput) ([]*play.Play, error) {
	filter, err := play.NewFilter(input.Date, input.Genre)
	if err != nil {
		return nil, err
	}
	plays, err := s.playRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("公演一覧の取得に失敗しました: %w", err)
	}
	return plays, nil
}

// SyncSeatCounts は全公演の空席数をミラーへ書き直し、件数を返す
func (s *PlayService) SyncSeatCounts(ctx context.Context) (int, error) {
	if s.mirror == nil {
		return 0, nil
	}
	plays, err := s.playRepo.List(ctx, play.Filter{})
	if err != nil {
		return 0, fmt.Errorf("公演一覧の取得に失敗しました: %w", err)
	}
	counts := make(map[int]int, len(plays))
	for _, p := range plays {
		counts[p.ID] = p.AvailableSeats
	}
	if err := s.mirror.SetAvailableCounts(ctx, counts); err != nil {
		return 0, fmt.Errorf("空席数の同期に失敗しました: %w", err)
	}
	return len(counts), nil
}
