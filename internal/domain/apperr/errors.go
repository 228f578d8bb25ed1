// Package apperr はドメイン全体で共有するエラー分類を定義する
package apperr

import "errors"

// Kind はエラーの分類を表す
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindPayment    Kind = "payment"
	KindInternal   Kind = "internal"
)

// ErrInternal は想定外の障害を表す。詳細は利用者に返さない
var ErrInternal = New(KindInternal, "INTERNAL_ERROR", "Внутренняя ошибка сервера")

// Error は分類とコードを持つドメインエラー
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New は新しいドメインエラーを作成する
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Is はコードが一致すれば同じエラーとみなす
// WithMessage で作った詳細エラーも元のセンチネルにマッチする
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage はメッセージだけを差し替えたコピーを返す
func (e *Error) WithMessage(message string) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: message}
}

// KindOf はエラーの分類を返す（ドメインエラー以外は KindInternal）
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
