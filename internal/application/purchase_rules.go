package application

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
)

// purchaseRule は購入リクエストの検証規則
// 規則は定義順に評価し、最初に失敗したものを返す
type purchaseRule struct {
	name  string
	check func(in PurchaseTicketInput) error
}

var purchaseRules = []purchaseRule{
	{name: "required_fields", check: checkRequiredFields},
	{name: "email_format", check: checkEmailFormat},
	{name: "seat_number", check: checkSeatNumber},
}

var fieldValidator = newFieldValidator()

// エラーには Go のフィールド名ではなく JSON のキー名を出す
func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func validatePurchase(in PurchaseTicketInput) error {
	for _, r := range purchaseRules {
		if err := r.check(in); err != nil {
			return err
		}
	}
	return nil
}

func checkRequiredFields(in PurchaseTicketInput) error {
	err := fieldValidator.Struct(in)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return ticket.ErrMissingField.WithMessage(
			fmt.Sprintf("%s: %s", ticket.ErrMissingField.Message, verrs[0].Field()),
		)
	}
	return fmt.Errorf("入力検証に失敗: %w", err)
}

func checkEmailFormat(in PurchaseTicketInput) error {
	if !ticket.ValidEmail(*in.UserEmail) {
		return ticket.ErrInvalidEmail
	}
	return nil
}

func checkSeatNumber(in PurchaseTicketInput) error {
	return seat.NewPosition(*in.Row, *in.Seat).Validate()
}
