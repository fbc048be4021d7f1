package main

import (
	"os"

	"github.com/cinemabook/cinema-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
