package query

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/cinemabook/cinema-api/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	action = domain.Genre{ID: 1, Name: "Action"}
	drama  = domain.Genre{ID: 2, Name: "Drama"}
	scifi  = domain.Genre{ID: 3, Name: "Sci-Fi"}

	keanu  = domain.Actor{ID: 1, FirstName: "Keanu", LastName: "Reeves"}
	carrie = domain.Actor{ID: 2, FirstName: "Carrie-Anne", LastName: "Moss"}
	al     = domain.Actor{ID: 3, FirstName: "Al", LastName: "Pacino"}
)

func catalog() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "The Matrix", Genres: []domain.Genre{action, scifi}, Actors: []domain.Actor{keanu, carrie}},
		{ID: 2, Title: "The Matrix Reloaded", Genres: []domain.Genre{action, drama}, Actors: []domain.Actor{keanu}},
		{ID: 3, Title: "Heat", Genres: []domain.Genre{drama}, Actors: []domain.Actor{al}},
		{ID: 4, Title: "John Wick", Genres: []domain.Genre{action}, Actors: []domain.Actor{keanu}},
	}
}

// inMemoryMovies evaluates the filters the way the storage layer does,
// joining each movie once per matching genre or actor so that duplicates
// reach the service like they would from a fanned-out join.
func inMemoryMovies(movies []domain.Movie) *mocks.MockMovieRepo {
	return &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context, f domain.MovieFilters) ([]domain.Movie, error) {
			var out []domain.Movie

			for _, m := range movies {
				if f.Title != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(f.Title)) {
					continue
				}

				genreHits := countHits(m.GenreIDs(), f.GenreIDs)
				actorHits := countHits(m.ActorIDs(), f.ActorIDs)
				if genreHits == 0 || actorHits == 0 {
					continue
				}

				for i := 0; i < genreHits*actorHits; i++ {
					out = append(out, m)
				}
			}

			return out, nil
		},
	}
}

func countHits(have, want []int) int {
	if len(want) == 0 {
		return 1
	}

	hits := 0
	for _, h := range have {
		for _, w := range want {
			if h == w {
				hits++
			}
		}
	}

	return hits
}

func newTestService(movies domain.MovieRepository, sessions domain.MovieSessionRepository) *Service {
	return NewService(movies, sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func movieIDs(movies []domain.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func TestFindMovies(t *testing.T) {
	tests := []struct {
		name    string
		query   MovieQuery
		wantIDs []int
		wantErr *domain.InvalidFilterError
	}{
		{
			name:    "no filters returns every movie",
			query:   MovieQuery{},
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "title filter is a case-insensitive substring match",
			query:   MovieQuery{Title: "mATRix"},
			wantIDs: []int{1, 2},
		},
		{
			name:    "title filter without matches",
			query:   MovieQuery{Title: "alien"},
			wantIDs: []int{},
		},
		{
			name:    "movie matching several requested genres appears once",
			query:   MovieQuery{Genres: "1,2,3"},
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "genre filter is an OR membership test",
			query:   MovieQuery{Genres: "2"},
			wantIDs: []int{2, 3},
		},
		{
			name:    "actor filter",
			query:   MovieQuery{Actors: "1,2"},
			wantIDs: []int{1, 2, 4},
		},
		{
			name:    "title and genres are intersected",
			query:   MovieQuery{Title: "matrix", Genres: "1,2"},
			wantIDs: []int{1, 2},
		},
		{
			name:    "genres and actors are intersected",
			query:   MovieQuery{Genres: "2", Actors: "1"},
			wantIDs: []int{2},
		},
		{
			name:    "non numeric genre token",
			query:   MovieQuery{Genres: "1,drama"},
			wantErr: &domain.InvalidFilterError{Param: "genres", Value: "drama"},
		},
		{
			name:    "non numeric actor token",
			query:   MovieQuery{Actors: "keanu"},
			wantErr: &domain.InvalidFilterError{Param: "actors", Value: "keanu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(inMemoryMovies(catalog()), nil)

			got, err := svc.FindMovies(context.Background(), tt.query)

			if tt.wantErr != nil {
				var filterErr *domain.InvalidFilterError
				if !errors.As(err, &filterErr) {
					t.Fatalf("FindMovies() error = %v, want %v", err, tt.wantErr)
				}
				if diff := cmp.Diff(tt.wantErr, filterErr); diff != "" {
					t.Errorf("FindMovies() error mismatch (-want +got):\n%s", diff)
				}
				return
			}

			if err != nil {
				t.Fatalf("FindMovies() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantIDs, movieIDs(got)); diff != "" {
				t.Errorf("FindMovies() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindMoviesPassesParsedFilters(t *testing.T) {
	var got domain.MovieFilters

	repo := &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context, f domain.MovieFilters) ([]domain.Movie, error) {
			got = f
			return []domain.Movie{}, nil
		},
	}

	_, err := newTestService(repo, nil).FindMovies(context.Background(), MovieQuery{
		Title:  "matrix",
		Genres: "1, 2",
		Actors: "3",
	})
	if err != nil {
		t.Fatalf("FindMovies() unexpected error: %v", err)
	}

	want := domain.MovieFilters{Title: "matrix", GenreIDs: []int{1, 2}, ActorIDs: []int{3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestFindMoviesRepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")

	repo := &mocks.MockMovieRepo{
		GetAllFunc: func(ctx context.Context, f domain.MovieFilters) ([]domain.Movie, error) {
			return nil, dbErr
		},
	}

	_, err := newTestService(repo, nil).FindMovies(context.Background(), MovieQuery{})
	if !errors.Is(err, dbErr) {
		t.Errorf("FindMovies() error = %v, want %v", err, dbErr)
	}
}

func TestFindSessions(t *testing.T) {
	bigHall := domain.CinemaHall{ID: 1, Name: "Blue", Rows: 10, SeatsInRow: 10}
	smallHall := domain.CinemaHall{ID: 2, Name: "Red", Rows: 2, SeatsInRow: 3}
	showTime := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

	stored := []domain.MovieSession{
		{ID: 3, ShowTime: showTime, Movie: domain.Movie{ID: 1}, CinemaHall: smallHall, SoldTickets: 8},
		{ID: 1, ShowTime: showTime, Movie: domain.Movie{ID: 1}, CinemaHall: bigHall, SoldTickets: 3},
		{ID: 2, ShowTime: showTime, Movie: domain.Movie{ID: 2}, CinemaHall: bigHall, SoldTickets: 0},
		{ID: 1, ShowTime: showTime, Movie: domain.Movie{ID: 1}, CinemaHall: bigHall, SoldTickets: 3},
	}

	tests := []struct {
		name        string
		query       SessionQuery
		wantFilters *domain.MovieSessionFilters
		wantCalled  bool
		want        []domain.MovieSession
		wantErr     bool
	}{
		{
			name:        "no filters returns all sessions ordered by id with availability",
			query:       SessionQuery{},
			wantFilters: &domain.MovieSessionFilters{},
			wantCalled:  true,
			want: []domain.MovieSession{
				{ID: 1, ShowTime: showTime, Movie: domain.Movie{ID: 1}, CinemaHall: bigHall, SoldTickets: 3, TicketsAvailable: 97},
				{ID: 2, ShowTime: showTime, Movie: domain.Movie{ID: 2}, CinemaHall: bigHall, SoldTickets: 0, TicketsAvailable: 100},
				{ID: 3, ShowTime: showTime, Movie: domain.Movie{ID: 1}, CinemaHall: smallHall, SoldTickets: 8, TicketsAvailable: -2},
			},
		},
		{
			name:        "movie and date filters are parsed",
			query:       SessionQuery{Movie: "1", Date: "2024-03-15"},
			wantFilters: &domain.MovieSessionFilters{MovieID: ptr(1), Date: ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))},
			wantCalled:  true,
		},
		{
			name:       "invalid calendar date yields an empty result",
			query:      SessionQuery{Date: "2024-02-30"},
			wantCalled: false,
			want:       []domain.MovieSession{},
		},
		{
			name:       "date without zero padding yields an empty result",
			query:      SessionQuery{Date: "2024-3-5"},
			wantCalled: false,
			want:       []domain.MovieSession{},
		},
		{
			name:       "malformed date yields an empty result",
			query:      SessionQuery{Movie: "1", Date: "15/03/2024"},
			wantCalled: false,
			want:       []domain.MovieSession{},
		},
		{
			name:       "non numeric movie",
			query:      SessionQuery{Movie: "matrix"},
			wantCalled: false,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			var gotFilters domain.MovieSessionFilters

			repo := &mocks.MockMovieSessionRepo{
				GetAllFunc: func(ctx context.Context, f domain.MovieSessionFilters) ([]domain.MovieSession, error) {
					called = true
					gotFilters = f

					sessions := make([]domain.MovieSession, len(stored))
					copy(sessions, stored)
					return sessions, nil
				},
			}

			got, err := newTestService(nil, repo).FindSessions(context.Background(), tt.query)

			if called != tt.wantCalled {
				t.Errorf("repository called = %v, want %v", called, tt.wantCalled)
			}

			if tt.wantErr {
				var filterErr *domain.InvalidFilterError
				if !errors.As(err, &filterErr) {
					t.Errorf("FindSessions() error = %v, want *domain.InvalidFilterError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("FindSessions() unexpected error: %v", err)
			}

			if tt.wantFilters != nil {
				if diff := cmp.Diff(*tt.wantFilters, gotFilters); diff != "" {
					t.Errorf("filters mismatch (-want +got):\n%s", diff)
				}
			}

			if tt.want != nil {
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("FindSessions() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestFindSessionsRecomputesAvailability(t *testing.T) {
	hall := domain.CinemaHall{ID: 1, Rows: 10, SeatsInRow: 10}
	sold := 3

	repo := &mocks.MockMovieSessionRepo{
		GetAllFunc: func(ctx context.Context, f domain.MovieSessionFilters) ([]domain.MovieSession, error) {
			return []domain.MovieSession{{ID: 1, CinemaHall: hall, SoldTickets: sold, TicketsAvailable: 100}}, nil
		},
	}

	svc := newTestService(nil, repo)

	got, err := svc.FindSessions(context.Background(), SessionQuery{})
	if err != nil {
		t.Fatalf("FindSessions() unexpected error: %v", err)
	}
	if got[0].TicketsAvailable != 97 {
		t.Errorf("TicketsAvailable = %d, want 97", got[0].TicketsAvailable)
	}

	sold = 5

	got, err = svc.FindSessions(context.Background(), SessionQuery{})
	if err != nil {
		t.Fatalf("FindSessions() unexpected error: %v", err)
	}
	if got[0].TicketsAvailable != 95 {
		t.Errorf("TicketsAvailable after more sales = %d, want 95", got[0].TicketsAvailable)
	}
}

func TestFindSessionsRepositoryError(t *testing.T) {
	dbErr := errors.New("query canceled")

	repo := &mocks.MockMovieSessionRepo{
		GetAllFunc: func(ctx context.Context, f domain.MovieSessionFilters) ([]domain.MovieSession, error) {
			return nil, dbErr
		},
	}

	got, err := newTestService(nil, repo).FindSessions(context.Background(), SessionQuery{})
	if !errors.Is(err, dbErr) {
		t.Errorf("FindSessions() error = %v, want %v", err, dbErr)
	}
	if got != nil {
		t.Errorf("FindSessions() = %v, want nil result on error", got)
	}
}

func ptr[T any](v T) *T {
	return &v
}
