package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/api"
)

// newTestEcho は本番と同じエラーハンドラーを持つEchoを返す
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	return e
}
