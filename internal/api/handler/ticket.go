package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/application"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
)

type TicketHandler struct {
	bookingService BookingServiceInterface
}

func NewTicketHandler(bookingService BookingServiceInterface) *TicketHandler {
	return &TicketHandler{bookingService: bookingService}
}

// PurchaseTicketRequest は購入リクエスト
// 項目の有無を区別するためポインタで受ける
type PurchaseTicketRequest struct {
	PlayID        *int    `json:"playId" example:"1"`
	Row           *int    `json:"row" example:"5"`
	Seat          *int    `json:"seat" example:"10"`
	UserEmail     *string `json:"userEmail" example:"user@example.com"`
	PaymentMethod *string `json:"paymentMethod" example:"card"`
}

type TicketResponse struct {
	TicketID     int     `json:"ticketId" example:"1"`
	PlayID       int     `json:"playId" example:"1"`
	PlayTitle    string  `json:"playTitle" example:"Гамлет"`
	Row          int     `json:"row" example:"5"`
	Seat         int     `json:"seat" example:"10"`
	Price        float64 `json:"price" example:"1500"`
	Status       string  `json:"status" example:"SOLD"`
	PurchaseDate string  `json:"purchaseDate" example:"2025-12-01T09:30:00Z"`
	UserEmail    string  `json:"userEmail" example:"user@example.com"`
	QRCode       string  `json:"qrCode" example:"https://api.theater.example.com/tickets/1/qr"`
}

func toTicketResponse(t *ticket.Ticket) *TicketResponse {
	return &TicketResponse{
		TicketID:     t.ID,
		PlayID:       t.PlayID,
		PlayTitle:    t.PlayTitle,
		Row:          t.Row,
		Seat:         t.Seat,
		Price:        t.Price.InexactFloat64(),
		Status:       string(t.Status),
		PurchaseDate: t.PurchasedAt.UTC().Format(time.RFC3339Nano),
		UserEmail:    t.UserEmail,
		QRCode:       t.QRCode,
	}
}

// Purchase godoc
// @Summary チケットを購入
// @Description 指定公演の座席を1つ購入します
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body PurchaseTicketRequest true "購入情報"
// @Success 201 {object} TicketResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 402 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Purchase(c echo.Context) error {
	var req PurchaseTicketRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("購入リクエストの解析に失敗しました", zap.Error(err))
		return apperr.ErrInternal
	}

	t, err := h.bookingService.PurchaseTicket(c.Request().Context(), application.PurchaseTicketInput{
		PlayID:        req.PlayID,
		Row:           req.Row,
		Seat:          req.Seat,
		UserEmail:     req.UserEmail,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTicketResponse(t))
}

// GetByID godoc
// @Summary チケットを取得
// @Tags tickets
// @Produce json
// @Param id path int true "チケットID"
// @Success 200 {object} TicketResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetByID(c echo.Context) error {
	// 数字以外を含むIDはルートに一致しないものとして扱う
	id, ok := parseTicketID(c.Param("id"))
	if !ok {
		return echo.ErrNotFound
	}

	t, err := h.bookingService.GetTicket(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponse(t))
}

// parseTicketID は符号なしの10進数だけを受け付ける
func parseTicketID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}
