package repository

import (
	"context"
	"fmt"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

// sessionSelect reads one row per session with the number of tickets sold
// for it. The grouping keeps the ticket join from multiplying sessions.
const sessionSelect = `
	SELECT
		ms.id,
		ms.show_time,
		m.id,
		m.title,
		m.description,
		m.duration,
		ch.id,
		ch.name,
		ch.rows,
		ch.seats_in_row,
		COUNT(t.id) AS sold_tickets
	FROM movie_sessions ms
	JOIN movies m ON m.id = ms.movie_id
	JOIN cinema_halls ch ON ch.id = ms.cinema_hall_id
	LEFT JOIN tickets t ON t.movie_session_id = ms.id
	%s
	GROUP BY ms.id, m.id, ch.id
	ORDER BY ms.id`

func sessionConditions(filters domain.MovieSessionFilters) []condition {
	var conds []condition

	if filters.MovieID != nil {
		conds = append(conds, sessionOfMovie(*filters.MovieID))
	}
	if filters.Date != nil {
		conds = append(conds, sessionShownOn(*filters.Date))
	}

	return conds
}

func (p *PostgresMovieSessionRepository) GetAll(
	ctx context.Context,
	filters domain.MovieSessionFilters) ([]domain.MovieSession, error) {

	where, args := whereClause(sessionConditions(filters)...)

	rows, err := p.db.Query(ctx, fmt.Sprintf(sessionSelect, where), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []domain.MovieSession{}

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, *session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func scanSession(row scanner) (*domain.MovieSession, error) {
	var session domain.MovieSession

	err := row.Scan(
		&session.ID,
		&session.ShowTime,
		&session.Movie.ID,
		&session.Movie.Title,
		&session.Movie.Description,
		&session.Movie.Duration,
		&session.CinemaHall.ID,
		&session.CinemaHall.Name,
		&session.CinemaHall.Rows,
		&session.CinemaHall.SeatsInRow,
		&session.SoldTickets,
	)
	if err != nil {
		return nil, err
	}

	session.ShowTime = session.ShowTime.UTC()

	return &session, nil
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	session, err := scanSession(p.db.QueryRow(ctx, fmt.Sprintf(sessionSelect, "WHERE ms.id = $1"), id))
	if err != nil {
		return nil, translateError(err)
	}

	movie, err := scanMovie(p.db.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM movies m WHERE m.id = $1`, movieColumns), session.Movie.ID))
	if err != nil {
		return nil, translateError(err)
	}

	session.Movie = *movie

	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	session.TakenPlaces = []domain.Place{}

	for rows.Next() {
		var place domain.Place

		if err := rows.Scan(&place.Row, &place.Seat); err != nil {
			return nil, err
		}

		session.TakenPlaces = append(session.TakenPlaces, place)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return session, nil
}

func (p *PostgresMovieSessionRepository) Create(ctx context.Context, session *domain.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, session.ShowTime, session.Movie.ID, session.CinemaHall.ID).Scan(&session.ID)

	return translateError(err)
}

func (p *PostgresMovieSessionRepository) Update(ctx context.Context, session *domain.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET show_time = $1, movie_id = $2, cinema_hall_id = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(ctx, query, session.ShowTime, session.Movie.ID, session.CinemaHall.ID, session.ID)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}

func (p *PostgresMovieSessionRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movie_sessions WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}
