package repository

import (
	"context"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

const ticketColumns = `
		t.id,
		t.order_id,
		t.seat_row,
		t.seat_number,
		ms.id,
		ms.show_time,
		m.id,
		m.title,
		ch.id,
		ch.name,
		ch.rows,
		ch.seats_in_row`

const ticketFrom = `
	FROM tickets t
	JOIN movie_sessions ms ON ms.id = t.movie_session_id
	JOIN movies m ON m.id = ms.movie_id
	JOIN cinema_halls ch ON ch.id = ms.cinema_hall_id`

const ticketSelect = `SELECT` + ticketColumns + ticketFrom

func scanTicket(row scanner, extra ...any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	session := &ticket.MovieSession

	dest := append(extra,
		&ticket.ID,
		&ticket.OrderID,
		&ticket.Row,
		&ticket.Seat,
		&session.ID,
		&session.ShowTime,
		&session.Movie.ID,
		&session.Movie.Title,
		&session.CinemaHall.ID,
		&session.CinemaHall.Name,
		&session.CinemaHall.Rows,
		&session.CinemaHall.SeatsInRow,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	session.ShowTime = session.ShowTime.UTC()

	return &ticket, nil
}

func (p *PostgresTicketRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(),` + ticketColumns + ticketFrom + `
		ORDER BY t.id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	tickets := make([]domain.Ticket, 0, pagination.PageSize)

	for rows.Next() {
		ticket, err := scanTicket(rows, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		tickets = append(tickets, *ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return tickets, metadata, nil
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	ticket, err := scanTicket(p.db.QueryRow(ctx, ticketSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, translateError(err)
	}

	return ticket, nil
}

func (p *PostgresTicketRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}
