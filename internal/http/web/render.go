package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bondsio/admin-console/util"
)

//go:embed templates
var templateFS embed.FS

// Shell is the layout chrome shared by every page: title bar and the active
// sidebar entry. It is plain per-render data, never process-wide state.
type Shell struct {
	Title  string
	Active string
}

// Init parses the embedded templates and prepares the review guard. Must be
// called before Serve.
func (api *API) Init() error {
	tmpl, err := template.New("").Funcs(util.TemplateFuncs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return errors.Wrap(err, "unable to parse templates")
	}
	api.tmpl = tmpl
	api.reviews = newReviewGuard()
	return nil
}

func (api *API) render(w http.ResponseWriter, r *http.Request, statusCode int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := api.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		api.logError(r, "unable to render template "+name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

// errorPage is the terminal failure state for pages that cannot render any
// of their content (detail views, or a list whose single fetch failed).
type errorPage struct {
	Shell
	Message  string
	Status   int
	RetryURL string
}

func (api *API) renderError(w http.ResponseWriter, r *http.Request, statusCode int, shell Shell, message string, upstreamStatus int) {
	api.render(w, r, statusCode, "error", errorPage{
		Shell:    shell,
		Message:  message,
		Status:   upstreamStatus,
		RetryURL: r.URL.RequestURI(),
	})
}
