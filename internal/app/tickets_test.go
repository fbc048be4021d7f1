package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/cinemabook/cinema-api/internal/mocks"
	"github.com/google/go-cmp/cmp"
)

func TestListTickets(t *testing.T) {
	order := testOrder(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	var gotPagination domain.Pagination

	app := newTestApplication(func(a *Application) {
		a.ticketRepo = &mocks.MockTicketRepo{
			GetAllFunc: func(ctx context.Context, pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error) {
				gotPagination = pagination
				return order.Tickets, domain.NewMetadata(12, pagination.Page, pagination.PageSize), nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/tickets?page=2", nil)

	app.Routes().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("ListTickets() status = %v, want %v", w.Code, http.StatusOK)
	}

	if diff := cmp.Diff(domain.Pagination{Page: 2, PageSize: 5}, gotPagination); diff != "" {
		t.Errorf("ListTickets() pagination mismatch (-want +got):\n%s", diff)
	}

	var response api.TicketListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.TicketListResponse{
		Tickets: []api.Ticket{
			{Id: 10, Row: 2, Seat: 5, MovieSession: toApiTicketSession(order.Tickets[0].MovieSession), Order: ptr(4)},
			{Id: 11, Row: 2, Seat: 6, MovieSession: toApiTicketSession(order.Tickets[1].MovieSession), Order: ptr(4)},
		},
		Metadata: api.Metadata{CurrentPage: 2, FirstPage: 1, LastPage: 3, PageSize: 5, TotalRecords: 12},
	}

	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("ListTickets() response mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTicket(t *testing.T) {
	order := testOrder(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	app := newTestApplication(func(a *Application) {
		a.ticketRepo = &mocks.MockTicketRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Ticket, error) {
				if id != 10 {
					return nil, domain.ErrRecordNotFound
				}
				return &order.Tickets[0], nil
			},
			DeleteFunc: func(ctx context.Context, id int) error {
				return domain.ErrRecordNotFound
			},
		}
	})

	tests := []struct {
		method     string
		url        string
		wantStatus int
	}{
		{http.MethodGet, "/tickets/10", http.StatusOK},
		{http.MethodGet, "/tickets/11", http.StatusNotFound},
		{http.MethodDelete, "/tickets/11", http.StatusNotFound},
		{http.MethodPost, "/tickets", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w, r := executeRequest(t, tt.method, tt.url, nil)

			app.Routes().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}
