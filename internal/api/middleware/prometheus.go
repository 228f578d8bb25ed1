package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/api"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/metrics"
)

// unmatchedPath はどのルートにも一致しなかったリクエストのラベル
const unmatchedPath = "unmatched"

// PrometheusMiddleware はHTTPメトリクスを収集するミドルウェア
func PrometheusMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status, _ = api.NewErrorResponse(err)
			}

			// ラベルの種類が増えすぎないよう、ルートに一致しないパスはまとめる
			path := c.Path()
			if path == "" || errors.Is(err, echo.ErrNotFound) && path == c.Request().URL.Path {
				path = unmatchedPath
			}

			method := c.Request().Method
			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

			return err
		}
	}
}
