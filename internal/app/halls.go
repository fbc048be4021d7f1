package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
)

func (app *Application) ListCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CinemaHall, len(halls))
	for i, h := range halls {
		resp[i] = toApiCinemaHall(h)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaHall(w http.ResponseWriter, r *http.Request, id int) {
	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var input api.CinemaHallRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	hall := domain.CinemaHall{Name: input.Name, Rows: input.Rows, SeatsInRow: input.SeatsInRow}

	err := app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiCinemaHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCinemaHall(w http.ResponseWriter, r *http.Request, id int) {
	var input api.CinemaHallRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	hall := domain.CinemaHall{ID: id, Name: input.Name, Rows: input.Rows, SeatsInRow: input.SeatsInRow}

	err := app.hallRepo.Update(r.Context(), &hall)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCinemaHall(w http.ResponseWriter, r *http.Request, id int) {
	err := app.hallRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiCinemaHall(h domain.CinemaHall) api.CinemaHall {
	return api.CinemaHall{
		Id:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
		Capacity:   h.Capacity(),
	}
}
