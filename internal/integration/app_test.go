package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinemabook/cinema-api/internal/app"
	"github.com/cinemabook/cinema-api/internal/repository"
	appvalidator "github.com/cinemabook/cinema-api/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		nil,
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresCinemaHallRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresMovieSessionRepository(db),
		repository.NewPostgresOrderRepository(db),
		repository.NewPostgresTicketRepository(db),
	)

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
