package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/clock"
)

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	clock clock.Clock
}

// NewHealthHandler はHealthHandlerを作成する
func NewHealthHandler(clk clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clk}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}
