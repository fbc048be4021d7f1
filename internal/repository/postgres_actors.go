package repository

import (
	"context"

	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) GetAll(ctx context.Context) ([]domain.Actor, error) {
	rows, err := p.db.Query(ctx, `SELECT id, first_name, last_name FROM actors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := []domain.Actor{}

	for rows.Next() {
		var actor domain.Actor

		if err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

func (p *PostgresActorRepository) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	var actor domain.Actor

	err := p.db.QueryRow(ctx, `SELECT id, first_name, last_name FROM actors WHERE id = $1`, id).
		Scan(&actor.ID, &actor.FirstName, &actor.LastName)
	if err != nil {
		return nil, translateError(err)
	}

	return &actor, nil
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id`

	err := p.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)

	return translateError(err)
}

func (p *PostgresActorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	query := `UPDATE actors SET first_name = $1, last_name = $2 WHERE id = $3`

	tag, err := p.db.Exec(ctx, query, actor.FirstName, actor.LastName, actor.ID)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}

func (p *PostgresActorRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(tag)
}
