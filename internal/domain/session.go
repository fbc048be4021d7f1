package domain

import (
	"context"
	"time"
)

type MovieSession struct {
	ID         int
	ShowTime   time.Time
	Movie      Movie
	CinemaHall CinemaHall

	// SoldTickets is the number of tickets referencing the session at the
	// time it was read.
	SoldTickets      int
	TicketsAvailable int
	TakenPlaces      []Place
}

func (s MovieSession) GetID() int {
	return s.ID
}

type Place struct {
	Row  int
	Seat int
}

// TicketsAvailable returns the hall capacity minus the sold ticket count. The
// result is negative for an over-booked session.
func TicketsAvailable(rows, seatsInRow, sold int) int {
	return rows*seatsInRow - sold
}

// Annotate recomputes TicketsAvailable from the session hall and sold count.
func (s *MovieSession) Annotate() {
	s.TicketsAvailable = TicketsAvailable(s.CinemaHall.Rows, s.CinemaHall.SeatsInRow, s.SoldTickets)
}

// MovieSessionFilters holds the parsed session listing filters. A nil field
// disables the filter.
type MovieSessionFilters struct {
	MovieID *int
	Date    *time.Time
}

type MovieSessionRepository interface {
	GetAll(ctx context.Context, filters MovieSessionFilters) ([]MovieSession, error)
	GetById(ctx context.Context, id int) (*MovieSession, error)
	Create(ctx context.Context, session *MovieSession) error
	Update(ctx context.Context, session *MovieSession) error
	Delete(ctx context.Context, id int) error
}
