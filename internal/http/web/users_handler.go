package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bondsio/admin-console/internal/http/bondsio"
	"github.com/bondsio/admin-console/internal/model"
)

// pageParam reads ?page=, falling back to 1 on anything invalid.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

type usersPage struct {
	Shell
	Users      []model.User
	Pagination model.Pagination
	BasePath   string
}

func (api *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	shell := Shell{Title: "Users", Active: "users"}

	page := pageParam(r)
	data, err := api.Deps.Bondsio.Users(r.Context(), tokenFromContext(r.Context()), page, api.Config.UserPageLimit)
	if err != nil {
		api.logError(r, "failed to load users", err)
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load users. Please try again later.", bondsio.StatusOf(err))
		return
	}

	api.render(w, r, http.StatusOK, "users", usersPage{
		Shell:      shell,
		Users:      data.Users,
		Pagination: data.Pagination,
		BasePath:   "/users",
	})
}

type userProfilePage struct {
	Shell
	Profile *model.UserProfile
}

func (api *API) ShowUserProfile(w http.ResponseWriter, r *http.Request) {
	shell := Shell{Title: "User Profile", Active: "users"}

	userID := chi.URLParam(r, "userID")
	profile, err := api.Deps.Bondsio.UserProfile(r.Context(), tokenFromContext(r.Context()), userID)
	if err != nil {
		api.logError(r, "failed to load user profile", err)
		if bondsio.StatusOf(err) == http.StatusNotFound {
			api.renderError(w, r, http.StatusNotFound, shell, "User not found.", http.StatusNotFound)
			return
		}
		api.renderError(w, r, http.StatusBadGateway, shell,
			"Failed to load user profile. Please try again later.", bondsio.StatusOf(err))
		return
	}

	api.render(w, r, http.StatusOK, "user_profile", userProfilePage{
		Shell:   shell,
		Profile: profile,
	})
}
