package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cinemabook/cinema-api/api"
	"github.com/cinemabook/cinema-api/internal/domain"
	"github.com/cinemabook/cinema-api/internal/query"
	"github.com/cinemabook/cinema-api/internal/repository"
	appvalidator "github.com/cinemabook/cinema-api/internal/validator"
	"github.com/cinemabook/cinema-api/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/riandyrn/otelchi"
)

const serviceName = "cinema-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	validator *validator.Validate
	swagger   *openapi3.T
	queries   *query.Service

	genreRepo   domain.GenreRepository
	actorRepo   domain.ActorRepository
	hallRepo    domain.CinemaHallRepository
	movieRepo   domain.MovieRepository
	sessionRepo domain.MovieSessionRepository
	orderRepo   domain.OrderRepository
	ticketRepo  domain.TicketRepository
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

func Run() error {
	// A missing .env file is fine, the environment may already be populated.
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("CINEMA_DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	logger, shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	db, err := NewDatabasePool(cfg)
	if err != nil {
		logger.Error("cannot connect to database", "error", err)
		return err
	}
	defer db.Close()

	swagger, err := api.GetSwagger()
	if err != nil {
		return err
	}

	app := NewApp(
		cfg,
		logger,
		db,
		appvalidator.NewValidator(),
		swagger,
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresCinemaHallRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresMovieSessionRepository(db),
		repository.NewPostgresOrderRepository(db),
		repository.NewPostgresTicketRepository(db),
	)

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validator *validator.Validate,
	swagger *openapi3.T,
	genreRepo domain.GenreRepository,
	actorRepo domain.ActorRepository,
	hallRepo domain.CinemaHallRepository,
	movieRepo domain.MovieRepository,
	sessionRepo domain.MovieSessionRepository,
	orderRepo domain.OrderRepository,
	ticketRepo domain.TicketRepository,
) *Application {
	return &Application{
		config:      cfg,
		logger:      logger,
		db:          db,
		validator:   validator,
		swagger:     swagger,
		queries:     query.NewService(movieRepo, sessionRepo, logger),
		genreRepo:   genreRepo,
		actorRepo:   actorRepo,
		hallRepo:    hallRepo,
		movieRepo:   movieRepo,
		sessionRepo: sessionRepo,
		orderRepo:   orderRepo,
		ticketRepo:  ticketRepo,
	}
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/healthcheck", app.GetHealth)
	r.Get("/openapi.json", app.GetOpenAPISpec)

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.ListGenres)
		r.Post("/", app.CreateGenre)
		r.Get("/{id}", app.withID(app.GetGenre))
		r.Put("/{id}", app.withID(app.UpdateGenre))
		r.Delete("/{id}", app.withID(app.DeleteGenre))
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.ListActors)
		r.Post("/", app.CreateActor)
		r.Get("/{id}", app.withID(app.GetActor))
		r.Put("/{id}", app.withID(app.UpdateActor))
		r.Delete("/{id}", app.withID(app.DeleteActor))
	})

	r.Route("/cinema_halls", func(r chi.Router) {
		r.Get("/", app.ListCinemaHalls)
		r.Post("/", app.CreateCinemaHall)
		r.Get("/{id}", app.withID(app.GetCinemaHall))
		r.Put("/{id}", app.withID(app.UpdateCinemaHall))
		r.Delete("/{id}", app.withID(app.DeleteCinemaHall))
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.listMoviesHandler)
		r.Post("/", app.CreateMovie)
		r.Get("/{id}", app.withID(app.GetMovie))
		r.Put("/{id}", app.withID(app.UpdateMovie))
		r.Delete("/{id}", app.withID(app.DeleteMovie))
	})

	r.Route("/movie_sessions", func(r chi.Router) {
		r.Get("/", app.listMovieSessionsHandler)
		r.Post("/", app.CreateMovieSession)
		r.Get("/{id}", app.withID(app.GetMovieSession))
		r.Put("/{id}", app.withID(app.UpdateMovieSession))
		r.Delete("/{id}", app.withID(app.DeleteMovieSession))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", app.withPage(app.ListOrders))
		r.Post("/", app.CreateOrder)
		r.Get("/{id}", app.withID(app.GetOrder))
		r.Delete("/{id}", app.withID(app.DeleteOrder))
	})

	r.Route("/tickets", func(r chi.Router) {
		r.Get("/", app.withPage(app.ListTickets))
		r.Get("/{id}", app.withID(app.GetTicket))
		r.Delete("/{id}", app.withID(app.DeleteTicket))
	})

	return r
}
