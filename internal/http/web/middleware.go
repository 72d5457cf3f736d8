package web

import (
	"context"
	"net/http"

	"github.com/lucsky/cuid"

	"github.com/bondsio/admin-console/util/tracing"
	"github.com/bondsio/admin-console/util/values"
)

// RequestTracing assigns every request an ID and stashes the tracing context
// for handlers and log lines.
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID: requestID,
			Route:     r.URL.Path,
		}

		w.Header().Set(values.HeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// RequireSession short-circuits protected views when no session exists: the
// request is redirected to the login form before any upstream call is made.
func (api *API) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := api.Deps.Sessions.Read(r)
		if !found {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), values.ContextTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(values.ContextTokenKey).(string)
	return token
}

func tracingFromContext(ctx context.Context) tracing.Context {
	tc, _ := ctx.Value(values.ContextTracingKey).(tracing.Context)
	return tc
}
