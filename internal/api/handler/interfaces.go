package handler

import (
	"context"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/application"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
)

// PlayServiceInterface は公演サービスのインターフェース
type PlayServiceInterface interface {
	ListPlays(ctx context.Context, input application.ListPlaysInput) ([]*play.Play, error)
}

// BookingServiceInterface は購入サービスのインターフェース
type BookingServiceInterface interface {
	PurchaseTicket(ctx context.Context, input application.PurchaseTicketInput) (*ticket.Ticket, error)
	GetTicket(ctx context.Context, id int) (*ticket.Ticket, error)
}
