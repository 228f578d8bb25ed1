// Package router は HTTP ルートとミドルウェアを組み立てる
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/api"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/api/handler"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/api/middleware"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/clock"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/config"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/metrics"
)

// Deps はルーティングに必要な依存
type Deps struct {
	PlayService    handler.PlayServiceInterface
	BookingService handler.BookingServiceInterface
	Clock          clock.Clock

	// Metrics が nil なら /metrics は公開しない
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	MetricsAuth config.MetricsConfig
}

// New はルートを登録した Echo を返す
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	if d.Metrics != nil {
		e.Use(middleware.PrometheusMiddleware(d.Metrics))
	}
	middleware.SetupMiddleware(e)

	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}

	playHandler := handler.NewPlayHandler(d.PlayService)
	ticketHandler := handler.NewTicketHandler(d.BookingService)
	healthHandler := handler.NewHealthHandler(d.Clock)

	v1 := e.Group("/v1")
	v1.GET("/plays", playHandler.List)
	v1.POST("/tickets", ticketHandler.Purchase)
	v1.GET("/tickets/:id", ticketHandler.GetByID)
	v1.GET("/health", healthHandler.Check)

	if d.Metrics != nil {
		gatherer := d.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
			middleware.MetricsBasicAuth(d.MetricsAuth))
	}

	return e
}
