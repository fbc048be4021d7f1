package mocks

import (
	"context"

	"github.com/cinemabook/cinema-api/internal/domain"
)

type MockTicketRepo struct {
	domain.TicketRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Ticket, error)
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockTicketRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockTicketRepo) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTicketRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
