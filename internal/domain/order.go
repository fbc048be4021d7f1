package domain

import (
	"context"
	"time"
)

type Order struct {
	ID        int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID           int
	OrderID      int
	Row          int
	Seat         int
	MovieSession MovieSession
}

type OrderRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Order, *Metadata, error)
	GetById(ctx context.Context, id int) (*Order, error)
	Create(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id int) error
}

type TicketRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Ticket, *Metadata, error)
	GetById(ctx context.Context, id int) (*Ticket, error)
	Delete(ctx context.Context, id int) error
}
