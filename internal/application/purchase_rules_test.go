package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/apperr"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validInput() PurchaseTicketInput {
	return PurchaseTicketInput{
		PlayID:    intPtr(1),
		Row:       intPtr(5),
		Seat:      intPtr(10),
		UserEmail: strPtr("a@b.com"),
	}
}

func TestPurchaseRules_Order(t *testing.T) {
	names := make([]string, 0, len(purchaseRules))
	for _, r := range purchaseRules {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{"required_fields", "email_format", "seat_number"}, names)
}

func TestValidatePurchase(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(in *PurchaseTicketInput)
		wantErr error
		wantMsg string
	}{
		{
			name:   "正常",
			modify: func(in *PurchaseTicketInput) {},
		},
		{
			name:    "playIdなし",
			modify:  func(in *PurchaseTicketInput) { in.PlayID = nil },
			wantErr: ticket.ErrMissingField,
			wantMsg: "Отсутствует обязательное поле: playId",
		},
		{
			name:    "userEmailなし",
			modify:  func(in *PurchaseTicketInput) { in.UserEmail = nil },
			wantErr: ticket.ErrMissingField,
			wantMsg: "Отсутствует обязательное поле: userEmail",
		},
		{
			name: "複数欠けている場合は最初のフィールドを報告",
			modify: func(in *PurchaseTicketInput) {
				in.Row = nil
				in.Seat = nil
			},
			wantErr: ticket.ErrMissingField,
			wantMsg: "Отсутствует обязательное поле: row",
		},
		{
			name: "欠落チェックはメール・座席番号より先",
			modify: func(in *PurchaseTicketInput) {
				in.UserEmail = strPtr("bad")
				in.Row = intPtr(0)
				in.Seat = nil
			},
			wantErr: ticket.ErrMissingField,
		},
		{
			name:    "0は欠落ではない",
			modify:  func(in *PurchaseTicketInput) { in.Row = intPtr(0) },
			wantErr: seat.ErrInvalidSeatNumber,
		},
		{
			name:    "@なしのメール",
			modify:  func(in *PurchaseTicketInput) { in.UserEmail = strPtr("ab.com") },
			wantErr: ticket.ErrInvalidEmail,
		},
		{
			name:    "2つ目の@より後ろのドットは数えない",
			modify:  func(in *PurchaseTicketInput) { in.UserEmail = strPtr("a@b@c.d") },
			wantErr: ticket.ErrInvalidEmail,
		},
		{
			name:    "空文字のメール",
			modify:  func(in *PurchaseTicketInput) { in.UserEmail = strPtr("") },
			wantErr: ticket.ErrInvalidEmail,
		},
		{
			name: "メールは座席番号より先",
			modify: func(in *PurchaseTicketInput) {
				in.UserEmail = strPtr("a@bcom")
				in.Seat = intPtr(-1)
			},
			wantErr: ticket.ErrInvalidEmail,
		},
		{
			name:    "座席番号が0",
			modify:  func(in *PurchaseTicketInput) { in.Seat = intPtr(0) },
			wantErr: seat.ErrInvalidSeatNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			err := validatePurchase(in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
