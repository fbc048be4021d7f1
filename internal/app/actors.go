package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
)

func (app *Application) ListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.actorRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Actor, len(actors))
	for i, a := range actors {
		resp[i] = toApiActor(a)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request, id int) {
	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.ActorRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	actor := domain.Actor{FirstName: input.FirstName, LastName: input.LastName}

	err := app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiActor(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateActor(w http.ResponseWriter, r *http.Request, id int) {
	var input api.ActorRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	actor := domain.Actor{ID: id, FirstName: input.FirstName, LastName: input.LastName}

	err := app.actorRepo.Update(r.Context(), &actor)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteActor(w http.ResponseWriter, r *http.Request, id int) {
	err := app.actorRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiActor(a domain.Actor) api.Actor {
	return api.Actor{
		Id:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
	}
}
