package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/application"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
)

type PlayHandler struct {
	playService PlayServiceInterface
}

func NewPlayHandler(playService PlayServiceInterface) *PlayHandler {
	return &PlayHandler{playService: playService}
}

type PlayResponse struct {
	ID             int    `json:"id" example:"1"`
	Title          string `json:"title" example:"Гамлет"`
	Date           string `json:"date" example:"2025-12-20T19:00:00Z"`
	Duration       int    `json:"duration" example:"180"`
	Genre          string `json:"genre" example:"трагедия"`
	Description    string `json:"description"`
	Hall           string `json:"hall" example:"Большой зал"`
	AvailableSeats int    `json:"availableSeats" example:"45"`
}

type PlayListResponse struct {
	Plays []*PlayResponse `json:"plays"`
}

func toPlayResponse(p *play.Play) *PlayResponse {
	return &PlayResponse{
		ID:             p.ID,
		Title:          p.Title,
		Date:           p.StartAt.UTC().Format(time.RFC3339),
		Duration:       p.Duration,
		Genre:          p.Genre,
		Description:    p.Description,
		Hall:           p.Hall,
		AvailableSeats: p.AvailableSeats,
	}
}

// List godoc
// @Summary 公演一覧を取得
// @Description 日付・ジャンルで絞り込んだ公演一覧を返します
// @Tags plays
// @Produce json
// @Param date query string false "上演日 (YYYY-MM-DD)"
// @Param genre query string false "ジャンル（大文字小文字を区別しない）"
// @Success 200 {object} PlayListResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /plays [get]
func (h *PlayHandler) List(c echo.Context) error {
	plays, err := h.playService.ListPlays(c.Request().Context(), application.ListPlaysInput{
		Date:  c.QueryParam("date"),
		Genre: c.QueryParam("genre"),
	})
	if err != nil {
		return err
	}

	resp := PlayListResponse{Plays: make([]*PlayResponse, len(plays))}
	for i, p := range plays {
		resp.Plays[i] = toPlayResponse(p)
	}
	return c.JSON(http.StatusOK, resp)
}
