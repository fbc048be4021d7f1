package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
)

func (app *Application) ListOrders(w http.ResponseWriter, r *http.Request, params api.PageParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	orders, metadata, err := app.orderRepo.GetAll(r.Context(), domain.OrderListing.Page(pageOrDefault(params.Page)))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.OrderListResponse{
		Orders:   make([]api.Order, len(orders)),
		Metadata: toApiMetadata(metadata),
	}

	for i, o := range orders {
		resp.Orders[i] = toApiOrder(o)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrder(w http.ResponseWriter, r *http.Request, id int) {
	order, err := app.orderRepo.GetById(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiOrder(*order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input api.OrderRequest

	if !app.decodeAndValidate(w, r, &input) {
		return
	}

	order := domain.Order{Tickets: make([]domain.Ticket, len(input.Tickets))}
	for i, t := range input.Tickets {
		order.Tickets[i] = domain.Ticket{
			Row:          t.Row,
			Seat:         t.Seat,
			MovieSession: domain.MovieSession{ID: t.MovieSession},
		}
	}

	err := app.orderRepo.Create(r.Context(), &order)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	created, err := app.orderRepo.GetById(r.Context(), order.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiOrder(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteOrder(w http.ResponseWriter, r *http.Request, id int) {
	err := app.orderRepo.Delete(r.Context(), id)
	if err != nil {
		app.repositoryErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pageOrDefault(page *int) int {
	if page == nil {
		return 1
	}

	return *page
}

func toApiMetadata(m *domain.Metadata) api.Metadata {
	if m == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  m.CurrentPage,
		FirstPage:    m.FirstPage,
		LastPage:     m.LastPage,
		PageSize:     m.PageSize,
		TotalRecords: m.TotalRecords,
	}
}

func toApiOrder(o domain.Order) api.Order {
	order := api.Order{
		Id:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   make([]api.Ticket, len(o.Tickets)),
	}

	for i, t := range o.Tickets {
		order.Tickets[i] = toApiTicket(t, false)
	}

	return order
}
