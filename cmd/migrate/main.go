package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinemabook/cinema-api/internal/dbmigrate"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		dsn    string
		source string
		steps  int
	)

	flag.StringVar(&dsn, "db-dsn", os.Getenv("CINEMA_DB_DSN"), "PostgreSQL DSN")
	flag.StringVar(&source, "source", "file://migrations", "migration source URL")
	flag.IntVar(&steps, "steps", 0, "number of migrations to roll back with down (0 means all)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] up|down|version\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error

	switch flag.Arg(0) {
	case "up":
		err = dbmigrate.Up(dsn, source)
	case "down":
		err = dbmigrate.Down(dsn, source, steps)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = dbmigrate.Version(dsn, source)
		if err == nil {
			logger.Info("schema version", "version", version, "dirty", dirty)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("migration command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	logger.Info("migration command finished", "command", flag.Arg(0))
}
