package play

import (
	"errors"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
)

// Play ドメインのエラー定義
var (
	ErrPlayNotFound      = apperr.New(apperr.KindNotFound, "PLAY_NOT_FOUND", "Спектакль не найден")
	ErrInvalidDateFormat = apperr.New(apperr.KindValidation, "INVALID_DATE_FORMAT", "Неверный формат даты. Используйте YYYY-MM-DD")

	// シードデータの検証エラー
	ErrInvalidPlayID         = errors.New("公演IDは1以上である必要があります")
	ErrPlayTitleRequired     = errors.New("公演タイトルは必須です")
	ErrInvalidAvailableSeats = errors.New("空席数は0以上である必要があります")
	ErrDuplicatePlayID       = errors.New("公演IDが重複しています")
)
