package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
)

// ルーティング由来のエラーコード
const (
	CodeEndpointNotFound = "ENDPOINT_NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StatusForKind はエラー分類をHTTPステータスに変換する
func StatusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPayment:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse はエラーからステータスとレスポンスを組み立てる
func NewErrorResponse(err error) (int, ErrorResponse) {
	var de *apperr.Error
	if errors.As(err, &de) {
		status := StatusForKind(de.Kind)
		return status, ErrorResponse{Error: http.StatusText(status), Message: de.Message, Code: de.Code}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, ErrorResponse{
				Error:   http.StatusText(he.Code),
				Message: "Эндпоинт не найден",
				Code:    CodeEndpointNotFound,
			}
		case http.StatusMethodNotAllowed:
			return he.Code, ErrorResponse{
				Error:   http.StatusText(he.Code),
				Message: "Метод не поддерживается для этого эндпоинта",
				Code:    CodeMethodNotAllowed,
			}
		}
		if he.Code < http.StatusInternalServerError {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			return he.Code, ErrorResponse{Error: http.StatusText(he.Code), Message: message, Code: statusCode(he.Code)}
		}
	}

	status := http.StatusInternalServerError
	return status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: apperr.ErrInternal.Message,
		Code:    apperr.ErrInternal.Code,
	}
}

// statusCode は "Unsupported Media Type" を "UNSUPPORTED_MEDIA_TYPE" のように変換する
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// CustomHTTPErrorHandler はカスタムエラーハンドラー
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, resp := NewErrorResponse(err)

	// エラーログを出力（5xx エラーの場合）
	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, resp)
	}
	if err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
