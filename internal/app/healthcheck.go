package app

import (
	"net/http"

	"github.com/cinemabook/cinema-api/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "UP", http.StatusOK

	if app.db != nil {
		err := app.db.Ping(r.Context())
		if err != nil {
			app.contextGetLogger(r).Warn("database ping failed", "error", err)
			status, code = "DOWN", http.StatusServiceUnavailable
		}
	}

	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	if app.swagger == nil {
		app.notFoundResponse(w, r)
		return
	}

	err := app.writeJSON(w, http.StatusOK, app.swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
