package repository

import (
	"context"
	"errors"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

func (p *PostgresOrderRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Order, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	orders := make([]domain.Order, 0, pagination.PageSize)

	for rows.Next() {
		var order domain.Order

		if err := rows.Scan(&totalRecords, &order.ID, &order.CreatedAt); err != nil {
			return nil, nil, err
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if err := p.attachTickets(ctx, orders); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return orders, metadata, nil
}

func (p *PostgresOrderRepository) GetById(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order

	err := p.db.QueryRow(ctx, `SELECT id, created_at FROM orders WHERE id = $1`, id).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	orders := []domain.Order{order}
	if err := p.attachTickets(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// attachTickets loads the tickets of all given orders with a single query.
func (p *PostgresOrderRepository) attachTickets(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	index := make(map[int]int, len(orders))

	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Tickets = []domain.Ticket{}
	}

	rows, err := p.db.Query(ctx, ticketSelect+` WHERE t.order_id = ANY($1) ORDER BY t.id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return err
		}

		i := index[ticket.OrderID]
		orders[i].Tickets = append(orders[i].Tickets, *ticket)
	}

	return rows.Err()
}

func (p *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if len(order.Tickets) == 0 {
		return domain.ErrOrderWithoutTickets
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		halls := make(map[int]domain.CinemaHall)

		for _, ticket := range order.Tickets {
			sessionID := ticket.MovieSession.ID

			hall, ok := halls[sessionID]
			if !ok {
				query := `
					SELECT ch.id, ch.name, ch.rows, ch.seats_in_row
					FROM movie_sessions ms
					JOIN cinema_halls ch ON ch.id = ms.cinema_hall_id
					WHERE ms.id = $1
				`

				err := tx.QueryRow(ctx, query, sessionID).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrReferenceNotFound
				}
				if err != nil {
					return err
				}

				halls[sessionID] = hall
			}

			if !hall.Contains(ticket.Row, ticket.Seat) {
				return domain.ErrTicketOutOfRange
			}
		}

		err := tx.QueryRow(ctx, `INSERT INTO orders DEFAULT VALUES RETURNING id, created_at`).
			Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(order.Tickets))
		for _, ticket := range order.Tickets {
			rows = append(rows, []any{
				order.ID,
				ticket.MovieSession.ID,
				ticket.Row,
				ticket.Seat,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"tickets"},
			[]string{"order_id", "movie_session_id", "seat_row", "seat_number"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	err = translateError(err)
	if errors.Is(err, domain.ErrDuplicateRecord) {
		return domain.ErrSeatAlreadyTaken
	}

	return err
}

func (p *PostgresOrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}
