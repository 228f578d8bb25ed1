package seat

import "github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"

// Seat ドメインのエラー定義
var (
	ErrInvalidSeatNumber = apperr.New(apperr.KindValidation, "INVALID_SEAT_NUMBER", "Номер ряда и места должны быть больше 0")
	ErrSeatTaken         = apperr.New(apperr.KindConflict, "SEAT_TAKEN", "Место уже занято")
)
