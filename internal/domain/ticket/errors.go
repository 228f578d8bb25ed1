package ticket

import "github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"

// Ticket ドメインのエラー定義
var (
	ErrTicketNotFound = apperr.New(apperr.KindNotFound, "TICKET_NOT_FOUND", "Билет не найден")
	ErrMissingField   = apperr.New(apperr.KindValidation, "MISSING_FIELD", "Отсутствует обязательное поле")
	ErrInvalidEmail   = apperr.New(apperr.KindValidation, "INVALID_EMAIL", "Неверный формат email")
)
