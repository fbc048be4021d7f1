package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/cinemabook/cinema-api/internal/query"
)

func (app *Application) ListMovieSessions(w http.ResponseWriter, r *http.Request, params api.ListMovieSessionsParams) {
	sessions, err := app.queries.FindSessions(r.Context(), query.SessionQuery{
		Movie: valueOrEmpty(params.Movie),
		Date:  valueOrEmpty(params.Date),
	})
	if err != nil {
		app.queryErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieSessionSummary, len(sessions))
	for i, s := range sessions {
		resp[i] = toApiMovieSessionSummary(s)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieSession(w http.ResponseWriter, r *http.Request, id int) {
	app.writeMovieSessionDetail(w, r, http.StatusOK, id)
}

func (app *Application) CreateMovieSession(w http.ResponseWriter, r *http.Request) {
	var input api.MovieSessionRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	session := toDomainMovieSession(0, input)

	err := app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	app.writeMovieSessionDetail(w, r, http.StatusCreated, session.ID)
}

func (app *Application) UpdateMovieSession(w http.ResponseWriter, r *http.Request, id int) {
	var input api.MovieSessionRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	session := toDomainMovieSession(id, input)

	err := app.sessionRepo.Update(r.Context(), &session)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	app.writeMovieSessionDetail(w, r, http.StatusOK, session.ID)
}

func (app *Application) DeleteMovieSession(w http.ResponseWriter, r *http.Request, id int) {
	err := app.sessionRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) writeMovieSessionDetail(w http.ResponseWriter, r *http.Request, status, id int) {
	session, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, status, toApiMovieSessionDetail(*session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainMovieSession(id int, input api.MovieSessionRequest) domain.MovieSession {
	return domain.MovieSession{
		ID:         id,
		ShowTime:   input.ShowTime,
		Movie:      domain.Movie{ID: input.Movie},
		CinemaHall: domain.CinemaHall{ID: input.CinemaHall},
	}
}

func toApiMovieSessionSummary(s domain.MovieSession) api.MovieSessionSummary {
	return api.MovieSessionSummary{
		Id:                 s.ID,
		ShowTime:           s.ShowTime,
		MovieTitle:         s.Movie.Title,
		CinemaHallName:     s.CinemaHall.Name,
		CinemaHallCapacity: s.CinemaHall.Capacity(),
		TicketsAvailable:   s.TicketsAvailable,
	}
}

func toApiMovieSessionDetail(s domain.MovieSession) api.MovieSessionDetail {
	detail := api.MovieSessionDetail{
		Id:          s.ID,
		ShowTime:    s.ShowTime,
		Movie:       toApiMovieSummary(s.Movie),
		CinemaHall:  toApiCinemaHall(s.CinemaHall),
		TakenPlaces: make([]api.Place, len(s.TakenPlaces)),
	}

	for i, p := range s.TakenPlaces {
		detail.TakenPlaces[i] = api.Place{Row: p.Row, Seat: p.Seat}
	}

	return detail
}

func toApiTicketSession(s domain.MovieSession) api.TicketSession {
	return api.TicketSession{
		Id:                 s.ID,
		ShowTime:           s.ShowTime,
		MovieTitle:         s.Movie.Title,
		CinemaHallName:     s.CinemaHall.Name,
		CinemaHallCapacity: s.CinemaHall.Capacity(),
	}
}
