package web

import (
	"net/http"
	"strings"

	"github.com/bondsio/admin-console/internal/http/bondsio"
	"github.com/bondsio/admin-console/internal/model"
	"github.com/bondsio/admin-console/util"
)

type loginPage struct {
	Shell
	Email string
	Error string
}

func loginShell() Shell {
	return Shell{Title: "Admin Login"}
}

func (api *API) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, found := api.Deps.Sessions.Read(r); found {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	api.render(w, r, http.StatusOK, "login", loginPage{Shell: loginShell()})
}

func (api *API) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.render(w, r, http.StatusBadRequest, "login", loginPage{
			Shell: loginShell(),
			Error: "Invalid form submission.",
		})
		return
	}

	credentials := model.LoginRequest{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	if err := util.ValidateStruct(credentials); err != nil {
		api.render(w, r, http.StatusUnprocessableEntity, "login", loginPage{
			Shell: loginShell(),
			Email: credentials.Email,
			Error: "Enter a valid email address and a password.",
		})
		return
	}

	data, err := api.Deps.Bondsio.Login(r.Context(), credentials)
	if err != nil {
		api.logError(r, "admin login failed", err)
		statusCode := http.StatusUnauthorized
		if bondsio.StatusOf(err) == 0 {
			statusCode = http.StatusBadGateway
		}
		api.render(w, r, statusCode, "login", loginPage{
			Shell: loginShell(),
			Email: credentials.Email,
			Error: "Invalid email or password. Please try again.",
		})
		return
	}

	api.Deps.Sessions.Issue(w, data.AccessToken)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (api *API) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Deps.Sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
