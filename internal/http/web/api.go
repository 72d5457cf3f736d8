package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bondsio/admin-console/config"
	"github.com/bondsio/admin-console/internal/deps"
	"github.com/bondsio/admin-console/internal/http/bondsio"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies

	tmpl    *template.Template
	reviews *reviewGuard
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	mux.Get("/login", api.ShowLogin)
	mux.Post("/login", api.HandleLogin)
	mux.Post("/logout", api.HandleLogout)

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireSession)

		r.Get("/dashboard", api.ShowDashboard)

		r.Get("/users", api.ListUsers)
		r.Get("/users/{userID}", api.ShowUserProfile)

		r.Get("/activities", api.ListActivities)
		r.Get("/activities/trending", api.ListTrendingActivities)
		r.Get("/activities/{id}", api.ShowActivity)

		r.Get("/reports/activities", api.ListActivityReports)
		r.Post("/reports/activities/{id}/review", api.ReviewActivityReport)

		r.Get("/bonds/reported", api.ListReportedBonds)
		r.Get("/bonds/{bondID}/reports", api.ListBondReports)
		r.Post("/bonds/{bondID}/reports/{reportID}/review", api.ReviewBondReport)
	})

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	return a.Server.Shutdown(ctx)
}

// logError records an upstream failure with its numeric status for
// diagnostics; the page itself only shows a generic message.
func (api *API) logError(r *http.Request, msg string, err error) {
	tc := tracingFromContext(r.Context())
	api.Deps.Logger.Error(msg,
		"error", err,
		"upstream_status", bondsio.StatusOf(err),
		"request_id", tc.RequestID,
		"route", tc.Route,
	)
}
