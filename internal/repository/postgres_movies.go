package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

const movieColumns = `
	m.id,
	m.title,
	m.description,
	m.duration,
	COALESCE((
		SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.id)
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = m.id
	), '[]') AS genres,
	COALESCE((
		SELECT jsonb_agg(jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name) ORDER BY a.id)
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = m.id
	), '[]') AS actors`

func movieConditions(filters domain.MovieFilters) []condition {
	var conds []condition

	if filters.Title != "" {
		conds = append(conds, titleContains(filters.Title))
	}
	if len(filters.GenreIDs) > 0 {
		conds = append(conds, hasAnyGenre(filters.GenreIDs))
	}
	if len(filters.ActorIDs) > 0 {
		conds = append(conds, hasAnyActor(filters.ActorIDs))
	}

	return conds
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]domain.Movie, error) {
	where, args := whereClause(movieConditions(filters)...)

	query := fmt.Sprintf(`SELECT %s FROM movies m %s ORDER BY m.id`, movieColumns, where)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, *movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies m WHERE m.id = $1`, movieColumns)

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}

	return movie, nil
}

func scanMovie(row scanner) (*domain.Movie, error) {
	var movie domain.Movie
	var genresJson, actorsJson json.RawMessage

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&genresJson,
		&actorsJson,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genresJson, &movie.Genres); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(actorsJson, &movie.Actors); err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO movies (title, description, duration)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, movie.Title, movie.Description, movie.Duration).Scan(&movie.ID)
		if err != nil {
			return err
		}

		return replaceMovieRelations(ctx, tx, movie)
	})

	return translateError(err)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE movies
			SET title = $1, description = $2, duration = $3
			WHERE id = $4
		`

		tag, err := tx.Exec(ctx, query, movie.Title, movie.Description, movie.Duration, movie.ID)
		if err != nil {
			return err
		}

		if err := expectAffected(tag); err != nil {
			return err
		}

		return replaceMovieRelations(ctx, tx, movie)
	})

	return translateError(err)
}

// replaceMovieRelations rewrites the genre and actor links of the movie to
// match the ids held by movie.
func replaceMovieRelations(ctx context.Context, tx pgx.Tx, movie *domain.Movie) error {
	_, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movie.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movie.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO movie_genres (movie_id, genre_id)
		SELECT DISTINCT $1::int, unnest($2::int[])
	`, movie.ID, movie.GenreIDs())
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO movie_actors (movie_id, actor_id)
		SELECT DISTINCT $1::int, unnest($2::int[])
	`, movie.ID, movie.ActorIDs())

	return err
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}
