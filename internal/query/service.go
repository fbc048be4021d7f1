// Package query builds the filtered movie and movie session listings.
package query

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/cinemabook/cinema-api/internal/domain"
)

// MovieQuery holds the raw movie listing parameters as received on the wire.
// Empty fields disable their filter.
type MovieQuery struct {
	Title  string
	Genres string
	Actors string
}

// SessionQuery holds the raw movie session listing parameters.
type SessionQuery struct {
	Movie string
	Date  string
}

type Service struct {
	movies   domain.MovieRepository
	sessions domain.MovieSessionRepository
	logger   *slog.Logger
}

func NewService(
	movies domain.MovieRepository,
	sessions domain.MovieSessionRepository,
	logger *slog.Logger) *Service {

	return &Service{
		movies:   movies,
		sessions: sessions,
		logger:   logger,
	}
}

// FindMovies returns the distinct movies matching every supplied filter. A
// genres or actors value that is not a list of integers fails with
// *domain.InvalidFilterError.
func (s *Service) FindMovies(ctx context.Context, q MovieQuery) ([]domain.Movie, error) {
	filters, err := toMovieFilters(q)
	if err != nil {
		return nil, err
	}

	movies, err := s.movies.GetAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.DistinctByID(movies), nil
}

func toMovieFilters(q MovieQuery) (domain.MovieFilters, error) {
	filters := domain.MovieFilters{
		Title: q.Title,
	}

	if q.Genres != "" {
		ids, err := domain.ParseIDList("genres", q.Genres)
		if err != nil {
			return filters, err
		}

		filters.GenreIDs = ids
	}

	if q.Actors != "" {
		ids, err := domain.ParseIDList("actors", q.Actors)
		if err != nil {
			return filters, err
		}

		filters.ActorIDs = ids
	}

	return filters, nil
}

// FindSessions returns the distinct sessions matching the filters, ordered by
// id and annotated with the number of tickets still available. A date that is
// not a valid YYYY-MM-DD calendar date yields an empty result rather than an
// error.
func (s *Service) FindSessions(ctx context.Context, q SessionQuery) ([]domain.MovieSession, error) {
	var filters domain.MovieSessionFilters

	if q.Movie != "" {
		id, err := domain.ParseID("movie", q.Movie)
		if err != nil {
			return nil, err
		}

		filters.MovieID = &id
	}

	if q.Date != "" {
		// Only zero-padded YYYY-MM-DD is accepted, so 2024-3-5 is malformed.
		date, err := time.Parse(time.DateOnly, q.Date)
		if err != nil {
			s.logger.DebugContext(ctx, "ignoring session query with malformed date", "date", q.Date)
			return []domain.MovieSession{}, nil
		}

		filters.Date = &date
	}

	sessions, err := s.sessions.GetAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	sessions = domain.DistinctByID(sessions)

	for i := range sessions {
		sessions[i].Annotate()
	}

	slices.SortStableFunc(sessions, func(a, b domain.MovieSession) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return sessions, nil
}
