package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
)

func (app *Application) ListTickets(w http.ResponseWriter, r *http.Request, params api.PageParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	tickets, metadata, err := app.ticketRepo.GetAll(r.Context(), domain.TicketListing.Page(pageOrDefault(params.Page)))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketListResponse{
		Tickets:  make([]api.Ticket, len(tickets)),
		Metadata: toApiMetadata(metadata),
	}

	for i, t := range tickets {
		resp.Tickets[i] = toApiTicket(t, true)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request, id int) {
	ticket, err := app.ticketRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTicket(*ticket, true), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTicket(w http.ResponseWriter, r *http.Request, id int) {
	err := app.ticketRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toApiTicket converts a ticket; withOrder controls whether the owning order id
// is included, which is redundant when the ticket is nested in its order.
func toApiTicket(t domain.Ticket, withOrder bool) api.Ticket {
	ticket := api.Ticket{
		Id:           t.ID,
		Row:          t.Row,
		Seat:         t.Seat,
		MovieSession: toApiTicketSession(t.MovieSession),
	}

	if withOrder {
		ticket.Order = &t.OrderID
	}

	return ticket
}
