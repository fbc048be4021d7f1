package domain

import "context"

type CinemaHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

// Contains reports whether the given 1-based row and seat exist in the hall.
func (h CinemaHall) Contains(row, seat int) bool {
	return row >= 1 && row <= h.Rows && seat >= 1 && seat <= h.SeatsInRow
}

type CinemaHallRepository interface {
	GetAll(ctx context.Context) ([]CinemaHall, error)
	GetById(ctx context.Context, id int) (*CinemaHall, error)
	Create(ctx context.Context, hall *CinemaHall) error
	Update(ctx context.Context, hall *CinemaHall) error
	Delete(ctx context.Context, id int) error
}
