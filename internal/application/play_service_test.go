package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
)

func TestPlayService_ListPlays(t *testing.T) {
	env := setupTestEnv(t, approveAll(), DefaultBookingConfig())
	ctx := context.Background()

	t.Run("条件なしは全件をシード順で返す", func(t *testing.T) {
		plays, err := env.plays.ListPlays(ctx, ListPlaysInput{})
		require.NoError(t, err)
		require.Len(t, plays, 3)
		assert.Equal(t, "Гамлет", plays[0].Title)
		assert.Equal(t, "Ревизор", plays[1].Title)
		assert.Equal(t, "Вишнёвый сад", plays[2].Title)
	})

	t.Run("ジャンルは大文字小文字を区別しない", func(t *testing.T) {
		upper, err := env.plays.ListPlays(ctx, ListPlaysInput{Genre: "ДРАМА"})
		require.NoError(t, err)
		lower, err := env.plays.ListPlays(ctx, ListPlaysInput{Genre: "драма"})
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
		assert.NotEmpty(t, upper)
	})

	t.Run("日付で絞り込める", func(t *testing.T) {
		plays, err := env.plays.ListPlays(ctx, ListPlaysInput{Date: "2025-12-20"})
		require.NoError(t, err)
		require.Len(t, plays, 1)
		assert.Equal(t, 1, plays[0].ID)
	})

	t.Run("日付とジャンルはANDで合成する", func(t *testing.T) {
		plays, err := env.plays.ListPlays(ctx, ListPlaysInput{Date: "2025-12-20", Genre: "драма"})
		require.NoError(t, err)
		assert.Empty(t, plays)
	})

	t.Run("不正な日付はエラー", func(t *testing.T) {
		_, err := env.plays.ListPlays(ctx, ListPlaysInput{Date: "20-12-2025"})
		assert.ErrorIs(t, err, play.ErrInvalidDateFormat)
	})
}

func TestPlayService_SyncSeatCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("全公演の空席数を書き込む", func(t *testing.T) {
		repo := new(MockPlayRepository)
		mirror := new(MockSeatCountMirror)
		svc := NewPlayService(repo, mirror)

		repo.On("List", ctx, play.Filter{}).Return([]*play.Play{
			{ID: 1, AvailableSeats: 45},
			{ID: 2, AvailableSeats: 0},
		}, nil)
		mirror.On("SetAvailableCounts", ctx, map[int]int{1: 45, 2: 0}).Return(nil)

		n, err := svc.SyncSeatCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		mirror.AssertExpectations(t)
	})

	t.Run("ミラーの失敗はエラーを返す", func(t *testing.T) {
		repo := new(MockPlayRepository)
		mirror := new(MockSeatCountMirror)
		svc := NewPlayService(repo, mirror)

		repo.On("List", ctx, play.Filter{}).Return([]*play.Play{{ID: 1}}, nil)
		mirror.On("SetAvailableCounts", ctx, mock.Anything).Return(errors.New("redis down"))

		_, err := svc.SyncSeatCounts(ctx)
		assert.Error(t, err)
	})

	t.Run("ミラーがなければ何もしない", func(t *testing.T) {
		repo := new(MockPlayRepository)
		svc := NewPlayService(repo, nil)

		n, err := svc.SyncSeatCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
