package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status はチケットの状態を表す
type Status string

const (
	StatusSold Status = "SOLD"
)

// Ticket はチケットエンティティを表す（作成後は不変）
type Ticket struct {
	ID          int
	PlayID      int
	PlayTitle   string // 購入時点のタイトル
	Row         int
	Seat        int
	Price       decimal.Decimal
	Status      Status
	PurchasedAt time.Time
	UserEmail   string
	QRCode      string
}

// NewTicketInput はチケット作成に必要な値
type NewTicketInput struct {
	ID          int
	PlayID      int
	PlayTitle   string
	Row         int
	Seat        int
	Price       decimal.Decimal
	UserEmail   string
	PurchasedAt time.Time
	QRBaseURL   string
}

// NewTicket は販売済みのチケットを作成する
func NewTicket(in NewTicketInput) *Ticket {
	return &Ticket{
		ID:          in.ID,
		PlayID:      in.PlayID,
		PlayTitle:   in.PlayTitle,
		Row:         in.Row,
		Seat:        in.Seat,
		Price:       in.Price,
		Status:      StatusSold,
		PurchasedAt: in.PurchasedAt.UTC(),
		UserEmail:   in.UserEmail,
		QRCode:      QRCodeURL(in.QRBaseURL, in.ID),
	}
}

// QRCodeURL はチケットIDを埋め込んだ QR コード参照 URL を返す
func QRCodeURL(baseURL string, id int) string {
	return fmt.Sprintf("%s/%d/qr", strings.TrimRight(baseURL, "/"), id)
}

// Clone はコピーを返す
func (t *Ticket) Clone() *Ticket {
	c := *t
	return &c
}

// ValidEmail はメールアドレスの簡易チェックを行う
// "@" を含み、最初の "@" と次の "@"（なければ末尾）の間に "." があれば有効とする
func ValidEmail(email string) bool {
	_, rest, found := strings.Cut(email, "@")
	if !found {
		return false
	}
	domain, _, _ := strings.Cut(rest, "@")
	return strings.Contains(domain, ".")
}
