package app

import (
	"errors"
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/cinemabook/cinema-api/internal/query"
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request, params api.ListMoviesParams) {
	movies, err := app.queries.FindMovies(r.Context(), query.MovieQuery{
		Title:  valueOrEmpty(params.Title),
		Genres: valueOrEmpty(params.Genres),
		Actors: valueOrEmpty(params.Actors),
	})
	if err != nil {
		app.queryErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieSummary, len(movies))
	for i, m := range movies {
		resp[i] = toApiMovieSummary(m)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovieDetail(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	movie := toDomainMovie(0, input)

	err := app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	app.writeMovieDetail(w, r, http.StatusCreated, movie.ID)
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int) {
	var input api.MovieRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	movie := toDomainMovie(id, input)

	err := app.movieRepo.Update(r.Context(), &movie)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	app.writeMovieDetail(w, r, http.StatusOK, movie.ID)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeMovieDetail reloads the movie so the response carries the genre and
// actor records rather than the submitted ids.
func (app *Application) writeMovieDetail(w http.ResponseWriter, r *http.Request, status, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, status, toApiMovieDetail(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// queryErrorResponse maps a filtered listing failure: malformed filters are the
// client's fault, anything else is a server error.
func (app *Application) queryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var filterErr *domain.InvalidFilterError
	if errors.As(err, &filterErr) {
		app.badRequestResponse(w, r, filterErr)
		return
	}

	app.serverErrorResponse(w, r, err)
}

func toDomainMovie(id int, input api.MovieRequest) domain.Movie {
	movie := domain.Movie{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Genres:      make([]domain.Genre, len(input.Genres)),
		Actors:      make([]domain.Actor, len(input.Actors)),
	}

	for i, genreID := range input.Genres {
		movie.Genres[i] = domain.Genre{ID: genreID}
	}
	for i, actorID := range input.Actors {
		movie.Actors[i] = domain.Actor{ID: actorID}
	}

	return movie
}

func toApiMovieSummary(m domain.Movie) api.MovieSummary {
	summary := api.MovieSummary{
		Id:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Genres:      make([]string, len(m.Genres)),
		Actors:      make([]string, len(m.Actors)),
	}

	for i, g := range m.Genres {
		summary.Genres[i] = g.Name
	}
	for i, a := range m.Actors {
		summary.Actors[i] = a.FullName()
	}

	return summary
}

func toApiMovieDetail(m domain.Movie) api.MovieDetail {
	detail := api.MovieDetail{
		Id:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Genres:      make([]api.Genre, len(m.Genres)),
		Actors:      make([]api.Actor, len(m.Actors)),
	}

	for i, g := range m.Genres {
		detail.Genres[i] = toApiGenre(g)
	}
	for i, a := range m.Actors {
		detail.Actors[i] = toApiActor(a)
	}

	return detail
}
