package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
)

func (app *Application) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Genre, len(genres))
	for i, g := range genres {
		resp[i] = toApiGenre(g)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenre(w http.ResponseWriter, r *http.Request, id int) {
	genre, err := app.genreRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenre(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var input api.GenreRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	genre := domain.Genre{Name: input.Name}

	err := app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiGenre(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateGenre(w http.ResponseWriter, r *http.Request, id int) {
	var input api.GenreRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	genre := domain.Genre{ID: id, Name: input.Name}

	err := app.genreRepo.Update(r.Context(), &genre)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenre(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteGenre(w http.ResponseWriter, r *http.Request, id int) {
	err := app.genreRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiGenre(g domain.Genre) api.Genre {
	return api.Genre{Id: g.ID, Name: g.Name}
}
