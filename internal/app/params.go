package app

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/cinemabook/cinema-api/api"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

func (app *Application) withID(handler func(http.ResponseWriter, *http.Request, int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id int

		err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid format for parameter id"))
			return
		}

		if id < 1 {
			app.badRequestResponse(w, r, fmt.Errorf("id must be greater than zero"))
			return
		}

		handler(w, r, id)
	}
}

func (app *Application) withPage(handler func(http.ResponseWriter, *http.Request, api.PageParams)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params api.PageParams

		err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid format for parameter page"))
			return
		}

		handler(w, r, params)
	}
}

func (app *Application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	var params api.ListMoviesParams

	query := r.URL.Query()

	err := bindStringParams(query,
		stringParam{"title", &params.Title},
		stringParam{"genres", &params.Genres},
		stringParam{"actors", &params.Actors},
	)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.ListMovies(w, r, params)
}

func (app *Application) listMovieSessionsHandler(w http.ResponseWriter, r *http.Request) {
	var params api.ListMovieSessionsParams

	query := r.URL.Query()

	err := bindStringParams(query,
		stringParam{"movie", &params.Movie},
		stringParam{"date", &params.Date},
	)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.ListMovieSessions(w, r, params)
}

type stringParam struct {
	name string
	dest **string
}

// bindStringParams binds the optional query parameters in order and reports
// the first one that fails.
func bindStringParams(query url.Values, params ...stringParam) error {
	for _, p := range params {
		err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest)
		if err != nil {
			return fmt.Errorf("invalid format for parameter %s", p.name)
		}
	}

	return nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
