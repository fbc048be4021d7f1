package domain

import "context"

type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genres      []Genre
	Actors      []Actor
}

func (m Movie) GetID() int {
	return m.ID
}

func (m Movie) GenreIDs() []int {
	ids := make([]int, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}

	return ids
}

func (m Movie) ActorIDs() []int {
	ids := make([]int, len(m.Actors))
	for i, a := range m.Actors {
		ids[i] = a.ID
	}

	return ids
}

// MovieFilters holds the parsed movie listing filters. Zero values disable a
// filter; the enabled ones are combined conjunctively.
type MovieFilters struct {
	Title    string
	GenreIDs []int
	ActorIDs []int
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
